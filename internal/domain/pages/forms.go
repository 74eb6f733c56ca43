package pages

import (
	"errors"
	"fmt"
	"strings"

	"events-console/internal/domain/events"
)

var (
	ErrUnknownField       = errors.New("unknown field")
	ErrInvalidDraft       = errors.New("invalid draft")
	ErrNotEditing         = errors.New("edit form is not open")
	ErrDeleteNotRequested = errors.New("delete was not requested")
)

// CreateDraft es el formulario de alta. Los campos required replican el form.
type CreateDraft struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location"`
	StartTime   string `json:"startTime" validate:"required"`
	EndTime     string `json:"endTime" validate:"required"`
	Image       string `json:"image"`
}

func (d *CreateDraft) SetField(name, value string) error {
	switch name {
	case "title":
		d.Title = value
	case "description":
		d.Description = value
	case "location":
		d.Location = value
	case "startTime":
		d.StartTime = value
	case "endTime":
		d.EndTime = value
	case "image":
		d.Image = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// CreateState es la página de alta.
// Categories se recolecta del selector pero no se envía: el evento se crea
// siempre con categoryIds vacío.
type CreateState struct {
	Draft      CreateDraft `json:"draft"`
	Categories []events.ID `json:"categories"`
}

func NewCreateState() *CreateState {
	return &CreateState{Categories: []events.ID{}}
}

func (s *CreateState) SetField(name, value string) error {
	return s.Draft.SetField(strings.TrimSpace(name), value)
}

func (s *CreateState) SetCategories(ids []events.ID) {
	s.Categories = append(s.Categories[:0], ids...)
}

// record arma el documento que se envía en el POST.
func (s *CreateState) record(creator events.ID) events.Event {
	return events.Event{
		Title:       s.Draft.Title,
		Description: s.Draft.Description,
		Location:    s.Draft.Location,
		StartTime:   s.Draft.StartTime,
		EndTime:     s.Draft.EndTime,
		Image:       s.Draft.Image,
		CreatedBy:   creator,
		CategoryIDs: []events.ID{},
	}
}

// EditDraft son los campos editables del detalle.
type EditDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

func newEditDraft(e events.Event) EditDraft {
	return EditDraft{
		Title:       e.Title,
		Description: e.Description,
		Image:       e.Image,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
	}
}

func (d *EditDraft) SetField(name, value string) error {
	switch name {
	case "title":
		d.Title = value
	case "description":
		d.Description = value
	case "image":
		d.Image = value
	case "startTime":
		d.StartTime = value
	case "endTime":
		d.EndTime = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// DetailState es la página de detalle: datos cargados, modal de edición y
// diálogo de confirmación de borrado.
type DetailState struct {
	Event      events.Event      `json:"event"`
	User       *events.User      `json:"user"`
	Categories []events.Category `json:"categories"`

	Editing       bool      `json:"editing"`
	Draft         EditDraft `json:"draft"`
	DeletePending bool      `json:"delete_pending"`
}

func NewDetailState(data events.DetailData) *DetailState {
	return &DetailState{
		Event:      data.Event,
		User:       data.User,
		Categories: data.Categories,
		Draft:      newEditDraft(data.Event),
	}
}

// OpenEdit abre el formulario. El draft se conserva entre aperturas.
func (s *DetailState) OpenEdit()  { s.Editing = true }
func (s *DetailState) CloseEdit() { s.Editing = false }

func (s *DetailState) SetField(name, value string) error {
	if !s.Editing {
		return ErrNotEditing
	}
	return s.Draft.SetField(strings.TrimSpace(name), value)
}

// Merged: el evento cargado con los campos editados encima.
func (s *DetailState) Merged() events.Event {
	e := s.Event.Clone()
	e.Title = s.Draft.Title
	e.Description = s.Draft.Description
	e.Image = s.Draft.Image
	e.StartTime = s.Draft.StartTime
	e.EndTime = s.Draft.EndTime
	return e
}

func (s *DetailState) RequestDelete() { s.DeletePending = true }
func (s *DetailState) CancelDelete()  { s.DeletePending = false }

// CreatorName para mostrar; "Unknown" si no se resolvió el creador.
func (s *DetailState) CreatorName() string {
	if s.User == nil {
		return events.Unknown
	}
	return s.User.Name
}

func (s *DetailState) CategoryNames() []string {
	return events.CategoryNames(s.Categories, s.Event)
}
