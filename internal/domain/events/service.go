package events

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"events-console/internal/platform/logger"

	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrLoadFailed   = errors.New("failed to load data")
)

// LoadError es el único error que ve la capa de presentación cuando falla
// la carga de una página. No hay render parcial.
type LoadError struct {
	Page     string
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s page: %v: %s: %v", e.Page, ErrLoadFailed, e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoadFailed }

type ListData struct {
	Events     []Event
	Categories []Category
}

type DetailData struct {
	Event      Event
	User       *User // nil si el creador no está entre los usuarios
	Categories []Category
}

// Loader trae, antes de renderizar, los recursos que necesita cada página.
// Cada recurso va en su propio request; se espera a todos (join). Un fallo
// no cancela los requests ya lanzados.
type Loader struct {
	store Store
	log   logger.Logger
}

func NewLoader(store Store, log logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{
		store: store,
		log:   log.With(map[string]any{"component": "loader"}),
	}
}

func (l *Loader) LoadList(ctx context.Context) (ListData, error) {
	var out ListData

	var g errgroup.Group
	g.Go(func() error {
		evs, err := l.store.ListEvents(ctx)
		if err != nil {
			return &LoadError{Page: "list", Resource: "events", Err: err}
		}
		out.Events = evs
		return nil
	})
	g.Go(func() error {
		cats, err := l.store.ListCategories(ctx)
		if err != nil {
			return &LoadError{Page: "list", Resource: "categories", Err: err}
		}
		out.Categories = cats
		return nil
	})

	if err := g.Wait(); err != nil {
		l.log.Error("list load failed", map[string]any{"error": err})
		return ListData{}, err
	}

	if out.Events == nil {
		out.Events = []Event{}
	}
	if out.Categories == nil {
		out.Categories = []Category{}
	}
	return out, nil
}

// LoadDetail carga evento, usuarios y categorías. Los usuarios se piden
// completos aunque solo se use el creador.
func (l *Loader) LoadDetail(ctx context.Context, id ID) (DetailData, error) {
	if strings.TrimSpace(id.String()) == "" {
		return DetailData{}, &LoadError{Page: "detail", Resource: "event", Err: ErrInvalidInput}
	}

	var (
		ev    Event
		users []User
		cats  []Category
	)

	var g errgroup.Group
	g.Go(func() error {
		e, err := l.store.GetEvent(ctx, id)
		if err != nil {
			return &LoadError{Page: "detail", Resource: "event", Err: err}
		}
		ev = e
		return nil
	})
	g.Go(func() error {
		us, err := l.store.ListUsers(ctx)
		if err != nil {
			return &LoadError{Page: "detail", Resource: "users", Err: err}
		}
		users = us
		return nil
	})
	g.Go(func() error {
		cs, err := l.store.ListCategories(ctx)
		if err != nil {
			return &LoadError{Page: "detail", Resource: "categories", Err: err}
		}
		cats = cs
		return nil
	})

	if err := g.Wait(); err != nil {
		l.log.Error("detail load failed", map[string]any{"event_id": id.String(), "error": err})
		return DetailData{}, err
	}

	if cats == nil {
		cats = []Category{}
	}

	user := FindUser(users, ev.CreatedBy)
	if user == nil {
		l.log.Warn("event creator not found", map[string]any{
			"event_id":   id.String(),
			"created_by": ev.CreatedBy.String(),
		})
	}

	return DetailData{
		Event:      ev,
		User:       user,
		Categories: cats,
	}, nil
}
