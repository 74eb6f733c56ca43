package pages

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Notification es un aviso efímero (toast) para la superficie que renderiza.
type Notification struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      Status `json:"status"`
	DurationMS  int64  `json:"duration_ms"`
}

const (
	shortToast = 3 * time.Second
	longToast  = 4 * time.Second
)

func notify(status Status, title, description string, d time.Duration) *Notification {
	return &Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Status:      status,
		DurationMS:  d.Milliseconds(),
	}
}

// ListPath es el destino de navegación tras crear o borrar.
const ListPath = "/"

// Result reporta el desenlace de una acción de página.
// Navigate != "" significa que la página se abandona.
type Result struct {
	Navigate     string        `json:"navigate,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}

func (r Result) Navigated() bool { return r.Navigate != "" }

func (r Result) Failed() bool {
	return r.Notification != nil && r.Notification.Status == StatusError
}
