package pages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"events-console/internal/ports/sessions"

	"github.com/google/uuid"
)

const DefaultSessionTTL = 30 * time.Minute

var ErrSessionNotFound = sessions.ErrNotFound

type Kind string

const (
	KindCreate Kind = "create"
	KindDetail Kind = "detail"
)

// Session es el estado de una página abierta. Se crea al entrar a la página
// y se descarta al navegar fuera.
type Session struct {
	ID       string       `json:"id"`
	Kind     Kind         `json:"kind"`
	Create   *CreateState `json:"create,omitempty"`
	Detail   *DetailState `json:"detail,omitempty"`
	OpenedAt time.Time    `json:"opened_at"`
}

type Sessions struct {
	store sessions.Store
	ttl   time.Duration
	now   func() time.Time
}

func NewSessions(store sessions.Store, ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{store: store, ttl: ttl, now: time.Now}
}

func (m *Sessions) OpenCreate(ctx context.Context, st *CreateState) (*Session, error) {
	return m.open(ctx, &Session{Kind: KindCreate, Create: st})
}

func (m *Sessions) OpenDetail(ctx context.Context, st *DetailState) (*Session, error) {
	return m.open(ctx, &Session{Kind: KindDetail, Detail: st})
}

func (m *Sessions) open(ctx context.Context, s *Session) (*Session, error) {
	s.ID = uuid.NewString()
	s.OpenedAt = m.now().UTC()
	if err := m.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (m *Sessions) Load(ctx context.Context, id string) (*Session, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSessionNotFound
	}

	raw, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	if (s.Kind == KindCreate && s.Create == nil) || (s.Kind == KindDetail && s.Detail == nil) {
		return nil, fmt.Errorf("session %s: missing %s state", id, s.Kind)
	}
	return &s, nil
}

// Save persiste el estado y renueva la expiración.
func (m *Sessions) Save(ctx context.Context, s *Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return m.store.Put(ctx, s.ID, raw, m.ttl)
}

func (m *Sessions) Close(ctx context.Context, id string) error {
	err := m.store.Delete(ctx, id)
	if errors.Is(err, sessions.ErrNotFound) {
		return nil
	}
	return err
}
