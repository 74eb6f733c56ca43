package sessions

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Store guarda el estado serializado de una página abierta, con expiración.
type Store interface {
	Put(ctx context.Context, id string, value []byte, ttl time.Duration) error
	// Get devuelve ErrNotFound si no existe o expiró.
	Get(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
}
