package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"events-console/internal/domain/events"
)

// DB es el documento que usa json-server (db.json).
type DB struct {
	Events     []events.Event    `json:"events"`
	Users      []events.User     `json:"users"`
	Categories []events.Category `json:"categories"`
}

// EventStore es un events.Store en memoria con la semántica del backend
// json-server: orden de inserción, ids numéricos autoincrementales.
type EventStore struct {
	mu sync.RWMutex

	order      []events.ID
	byID       map[events.ID]events.Event
	users      []events.User
	categories []events.Category
	nextID     int
}

var _ events.Store = (*EventStore)(nil)

func NewEventStore() *EventStore {
	return &EventStore{
		byID:   make(map[events.ID]events.Event),
		nextID: 1,
	}
}

// NewEventStoreFromFile carga un db.json. Path vacío => store vacío.
func NewEventStoreFromFile(path string) (*EventStore, error) {
	s := NewEventStore()
	if path == "" {
		return s, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var db DB
	if err := json.Unmarshal(b, &db); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	s.Seed(db)
	return s, nil
}

// Seed reemplaza el contenido completo del store.
func (s *EventStore) Seed(db DB) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = s.order[:0]
	s.byID = make(map[events.ID]events.Event, len(db.Events))
	s.nextID = 1
	for _, e := range db.Events {
		if e.ID.IsZero() {
			e.ID = s.allocID()
		}
		s.bump(e.ID)
		if _, dup := s.byID[e.ID]; !dup {
			s.order = append(s.order, e.ID)
		}
		s.byID[e.ID] = e.Clone()
	}
	s.users = append([]events.User(nil), db.Users...)
	s.categories = append([]events.Category(nil), db.Categories...)
}

func (s *EventStore) allocID() events.ID {
	id := events.ID(strconv.Itoa(s.nextID))
	s.nextID++
	return id
}

func (s *EventStore) bump(id events.ID) {
	if n, err := strconv.Atoi(id.String()); err == nil && n >= s.nextID {
		s.nextID = n + 1
	}
}

func (s *EventStore) ListEvents(ctx context.Context) ([]events.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]events.Event, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].Clone())
	}
	return out, nil
}

func (s *EventStore) GetEvent(ctx context.Context, id events.ID) (events.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.byID[id]
	if !ok {
		return events.Event{}, events.ErrNotFound
	}
	return e.Clone(), nil
}

func (s *EventStore) CreateEvent(ctx context.Context, e events.Event) (events.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e = e.Clone()
	e.ID = s.allocID()
	if e.CategoryIDs == nil {
		e.CategoryIDs = []events.ID{}
	}

	s.byID[e.ID] = e
	s.order = append(s.order, e.ID)
	return e.Clone(), nil
}

func (s *EventStore) UpdateEvent(ctx context.Context, e events.Event) (events.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID.IsZero() {
		return events.Event{}, errors.New("event id required")
	}
	if _, ok := s.byID[e.ID]; !ok {
		return events.Event{}, events.ErrNotFound
	}
	s.byID[e.ID] = e.Clone()
	return e.Clone(), nil
}

func (s *EventStore) DeleteEvent(ctx context.Context, id events.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return events.ErrNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *EventStore) ListUsers(ctx context.Context) ([]events.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]events.User{}, s.users...), nil
}

func (s *EventStore) ListCategories(ctx context.Context) ([]events.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]events.Category{}, s.categories...), nil
}
