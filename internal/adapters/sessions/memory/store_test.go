package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"events-console/internal/ports/sessions"
)

func TestStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if err := s.Put(ctx, "a", []byte(`{"k":1}`), time.Minute); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := s.Get(ctx, "a")
	if err != nil || string(got) != `{"k":1}` {
		t.Fatalf("get: %q %v", got, err)
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, "a"); !errors.Is(err, sessions.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := s.Delete(ctx, "a"); !errors.Is(err, sessions.ErrNotFound) {
		t.Fatalf("expected not found deleting twice, got %v", err)
	}
}

func TestStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	_ = s.Put(ctx, "a", []byte("x"), time.Minute)
	_ = s.Put(ctx, "b", []byte("y"), time.Hour)

	now = now.Add(2 * time.Minute)

	if _, err := s.Get(ctx, "a"); !errors.Is(err, sessions.ErrNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 live session, got %d", s.Len())
	}
}

func TestStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	v := []byte("abc")
	_ = s.Put(ctx, "a", v, time.Minute)
	v[0] = 'z'

	got, _ := s.Get(ctx, "a")
	if string(got) != "abc" {
		t.Fatalf("store kept caller slice: %q", got)
	}
}
