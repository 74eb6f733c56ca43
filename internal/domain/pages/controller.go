package pages

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"events-console/internal/domain/events"
	"events-console/internal/platform/httpclient"
	"events-console/internal/platform/logger"

	"github.com/go-playground/validator/v10"
)

// DefaultCreatorID es el creador fijo de los eventos nuevos (no hay auth).
const DefaultCreatorID events.ID = "1"

type Options struct {
	CreatorID events.ID
	Logger    logger.Logger
}

// Controller ejecuta las acciones de página contra el store remoto.
// El estado vive en los *State; el Controller no guarda nada entre llamadas.
type Controller struct {
	store     events.Store
	loader    *events.Loader
	creatorID events.ID
	validate  *validator.Validate
	log       logger.Logger
}

func NewController(store events.Store, opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	creator := opts.CreatorID
	if creator.IsZero() {
		creator = DefaultCreatorID
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &Controller{
		store:     store,
		loader:    events.NewLoader(store, log),
		creatorID: creator,
		validate:  v,
		log:       log.With(map[string]any{"component": "pages"}),
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func (c *Controller) CreatorID() events.ID { return c.creatorID }

// EnterList carga los datos del listado. El filtro se aplica con ListState.View.
func (c *Controller) EnterList(ctx context.Context) (events.ListData, error) {
	return c.loader.LoadList(ctx)
}

func (c *Controller) EnterDetail(ctx context.Context, id events.ID) (*DetailState, error) {
	data, err := c.loader.LoadDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewDetailState(data), nil
}

func (c *Controller) EnterCreate() *CreateState {
	return NewCreateState()
}

// SubmitCreate valida y envía el alta. El error es solo de validación (no se
// envió nada); los fallos del store vuelven como notificación en Result.
func (c *Controller) SubmitCreate(ctx context.Context, s *CreateState) (Result, error) {
	if err := c.validateDraft(s.Draft); err != nil {
		return Result{}, err
	}

	created, err := c.store.CreateEvent(ctx, s.record(c.creatorID))
	if err != nil {
		c.log.Warn("create event failed", map[string]any{"error": err})
		desc := "Failed to add event"
		if !rejected(err) {
			desc = err.Error()
		}
		return Result{Notification: notify(StatusError, "Error", desc, longToast)}, nil
	}

	c.log.Info("event created", map[string]any{"event_id": created.ID.String()})
	return Result{
		Navigate:     ListPath,
		Notification: notify(StatusSuccess, "Event added.", "", shortToast),
	}, nil
}

func (c *Controller) validateDraft(d CreateDraft) error {
	err := c.validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return fmt.Errorf("%w: required: %s", ErrInvalidDraft, strings.Join(missing, ", "))
}

// SaveEdit envía con PUT el registro fusionado. En éxito cierra el modal sin
// refrescar s.Event: el detalle sigue mostrando lo cargado al entrar.
func (c *Controller) SaveEdit(ctx context.Context, s *DetailState) (Result, error) {
	if !s.Editing {
		return Result{}, ErrNotEditing
	}

	if _, err := c.store.UpdateEvent(ctx, s.Merged()); err != nil {
		c.log.Warn("update event failed", map[string]any{"event_id": s.Event.ID.String(), "error": err})
		return Result{Notification: notify(StatusError, "Failed to update event.", "", shortToast)}, nil
	}

	s.CloseEdit()
	return Result{Notification: notify(StatusSuccess, "Event updated.", "", shortToast)}, nil
}

// ConfirmDelete es el segundo paso del borrado; requiere RequestDelete antes.
// En fallo el detalle queda igual y el diálogo se cierra.
func (c *Controller) ConfirmDelete(ctx context.Context, s *DetailState) (Result, error) {
	if !s.DeletePending {
		return Result{}, ErrDeleteNotRequested
	}
	defer s.CancelDelete()

	err := c.store.DeleteEvent(ctx, s.Event.ID)
	switch {
	case err == nil:
		c.log.Info("event deleted", map[string]any{"event_id": s.Event.ID.String()})
		return Result{
			Navigate:     ListPath,
			Notification: notify(StatusSuccess, "Event deleted.", "", shortToast),
		}, nil
	case rejected(err):
		c.log.Warn("delete event rejected", map[string]any{"event_id": s.Event.ID.String(), "error": err})
		return Result{Notification: notify(StatusError, "Failed to delete event.", "", shortToast)}, nil
	default:
		c.log.Error("delete event failed", map[string]any{"event_id": s.Event.ID.String(), "error": err})
		return Result{Notification: notify(StatusError, "Error deleting event.", err.Error(), shortToast)}, nil
	}
}

// rejected: el store respondió (status no-2xx) en vez de fallar la red.
func rejected(err error) bool {
	return httpclient.StatusCode(err) != 0 || errors.Is(err, events.ErrNotFound)
}
