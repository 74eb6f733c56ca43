package events

import "strings"

// CategorySet es la selección de categorías del listado. Vacía = sin filtro.
type CategorySet map[ID]struct{}

func NewCategorySet(ids ...ID) CategorySet {
	s := make(CategorySet, len(ids))
	for _, id := range ids {
		if id.IsZero() {
			continue
		}
		s[id] = struct{}{}
	}
	return s
}

func (s CategorySet) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

// Filter devuelve, en el orden original, los eventos que cumplen el texto
// y la selección de categorías. No modifica events.
func Filter(events []Event, query string, selected CategorySet) []Event {
	q := strings.ToLower(query)

	out := make([]Event, 0, len(events))
	for _, e := range events {
		if !matchesQuery(e, q) || !MatchesCategories(e, selected) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// MatchesQuery: query vacío o substring (sin mayúsculas) de título o descripción.
func MatchesQuery(e Event, query string) bool {
	return matchesQuery(e, strings.ToLower(query))
}

func matchesQuery(e Event, lowered string) bool {
	if lowered == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), lowered) ||
		strings.Contains(strings.ToLower(e.Description), lowered)
}

// MatchesCategories: selección vacía, o TODAS las categorías del evento
// están seleccionadas. Un evento sin categorías pasa cualquier selección.
func MatchesCategories(e Event, selected CategorySet) bool {
	if len(selected) == 0 {
		return true
	}
	for _, id := range e.CategoryIDs {
		if !selected.Has(id) {
			return false
		}
	}
	return true
}
