package events

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Event es la copia efímera de un evento del store remoto.
// StartTime/EndTime quedan como texto ISO-8601 tal cual llegan.
type Event struct {
	ID          ID     `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Location    string `json:"location"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	CategoryIDs []ID   `json:"categoryIds"`
	CreatedBy   ID     `json:"createdBy,omitempty"`

	// Extra conserva campos desconocidos para que un PUT no los pierda.
	Extra map[string]json.RawMessage `json:"-"`
}

type User struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type Category struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Unknown es el nombre que se muestra para referencias sin resolver.
const Unknown = "Unknown"

type eventFields Event

var knownEventFields = []string{
	"id", "title", "description", "image", "location",
	"startTime", "endTime", "categoryIds", "createdBy",
}

func (e *Event) UnmarshalJSON(b []byte) error {
	var f eventFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	for _, k := range knownEventFields {
		delete(all, k)
	}
	f.Extra = nil
	if len(all) > 0 {
		f.Extra = all
	}

	*e = Event(f)
	return nil
}

func (e Event) MarshalJSON() ([]byte, error) {
	f := eventFields(e)
	if f.CategoryIDs == nil {
		f.CategoryIDs = []ID{}
	}

	base, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	if len(e.Extra) == 0 {
		return base, nil
	}

	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range e.Extra {
		if _, known := merged[k]; !known {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// Clone copia slices y mapas para que los drafts no compartan memoria.
func (e Event) Clone() Event {
	out := e
	if e.CategoryIDs != nil {
		out.CategoryIDs = make([]ID, len(e.CategoryIDs))
		copy(out.CategoryIDs, e.CategoryIDs)
	}
	if e.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(e.Extra))
		for k, v := range e.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// FindUser resuelve el creador de un evento. Devuelve nil si no existe.
func FindUser(users []User, id ID) *User {
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u
		}
	}
	return nil
}

// CategoryName devuelve el nombre de la categoría o Unknown.
func CategoryName(categories []Category, id ID) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return Unknown
}

// CategoryNames resuelve los nombres de las categorías de e, en orden.
func CategoryNames(categories []Category, e Event) []string {
	out := make([]string, 0, len(e.CategoryIDs))
	for _, id := range e.CategoryIDs {
		out = append(out, CategoryName(categories, id))
	}
	return out
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04", // input datetime-local
	"2006-01-02",
}

var ErrInvalidTime = errors.New("invalid time")

// ParseTime interpreta los formatos que guarda el store (solo para mostrar).
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTime
}

// FormatTime formatea para pantalla; si no parsea, devuelve el texto original.
func FormatTime(s string) string {
	t, err := ParseTime(s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006 15:04")
}
