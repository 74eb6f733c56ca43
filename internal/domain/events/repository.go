package events

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven los stores cuando el recurso no existe (404).
var ErrNotFound = errors.New("not found")

// Store es el store remoto de eventos (API JSON). Es dueño de los datos;
// aquí solo se mantienen copias efímeras por página.
type Store interface {
	ListEvents(ctx context.Context) ([]Event, error)
	GetEvent(ctx context.Context, id ID) (Event, error)
	// CreateEvent recibe un evento sin id y devuelve el creado.
	CreateEvent(ctx context.Context, e Event) (Event, error)
	// UpdateEvent reemplaza el registro completo con id e.ID.
	UpdateEvent(ctx context.Context, e Event) (Event, error)
	DeleteEvent(ctx context.Context, id ID) error

	ListUsers(ctx context.Context) ([]User, error)
	ListCategories(ctx context.Context) ([]Category, error)
}
