package memory

import (
	"context"
	"sync"
	"time"

	"events-console/internal/ports/sessions"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Store guarda sesiones en un map; las expiradas se descartan al leerlas.
type Store struct {
	mu   sync.Mutex
	byID map[string]entry
	now  func() time.Time
}

var _ sessions.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		byID: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *Store) Put(ctx context.Context, id string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	s.byID[id] = entry{
		value:     append([]byte(nil), value...),
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return nil, sessions.ErrNotFound
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.byID, id)
		return nil, sessions.ErrNotFound
	}
	return append([]byte(nil), e.value...), nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return sessions.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

// Len cuenta las sesiones vivas.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	return len(s.byID)
}

func (s *Store) sweep() {
	now := s.now()
	for id, e := range s.byID {
		if !now.Before(e.expiresAt) {
			delete(s.byID, id)
		}
	}
}
