package pages

import "events-console/internal/domain/events"

const NoMatchesMessage = "No matching events found."

// ListState es el estado del listado: texto de búsqueda y categorías marcadas.
type ListState struct {
	Query    string      `json:"query"`
	Selected []events.ID `json:"selected"`
}

func (s *ListState) SetQuery(q string) { s.Query = q }

func (s *ListState) SetCategories(ids []events.ID) {
	s.Selected = s.Selected[:0]
	seen := map[events.ID]bool{}
	for _, id := range ids {
		if id.IsZero() || seen[id] {
			continue
		}
		seen[id] = true
		s.Selected = append(s.Selected, id)
	}
}

// ToggleCategory marca o desmarca una categoría (checkbox).
func (s *ListState) ToggleCategory(id events.ID) {
	for i, sel := range s.Selected {
		if sel == id {
			s.Selected = append(s.Selected[:i], s.Selected[i+1:]...)
			return
		}
	}
	if !id.IsZero() {
		s.Selected = append(s.Selected, id)
	}
}

type ListView struct {
	Query      string            `json:"query"`
	Selected   []events.ID       `json:"selected"`
	Events     []events.Event    `json:"events"`
	Categories []events.Category `json:"categories"`
	Message    string            `json:"message,omitempty"`
}

// View recalcula el listado visible; se llama en cada cambio de estado.
func (s ListState) View(data events.ListData) ListView {
	selected := s.Selected
	if selected == nil {
		selected = []events.ID{}
	}

	v := ListView{
		Query:      s.Query,
		Selected:   selected,
		Events:     events.Filter(data.Events, s.Query, events.NewCategorySet(s.Selected...)),
		Categories: data.Categories,
	}
	if v.Categories == nil {
		v.Categories = []events.Category{}
	}
	if len(v.Events) == 0 {
		v.Message = NoMatchesMessage
	}
	return v
}
