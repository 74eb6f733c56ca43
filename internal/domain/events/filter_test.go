package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleEvents() []Event {
	return []Event{
		{ID: "1", Title: "Jazz Night", Description: "live jazz", CategoryIDs: []ID{"1"}},
		{ID: "2", Title: "Art Expo", Description: "painting show", CategoryIDs: []ID{"2"}},
	}
}

func ids(evs []Event) []ID {
	out := make([]ID, 0, len(evs))
	for _, e := range evs {
		out = append(out, e.ID)
	}
	return out
}

func TestFilter_EmptyQueryAndSelectionReturnsInput(t *testing.T) {
	evs := append(sampleEvents(), Event{ID: "3", Title: "Open Mic"})

	got := Filter(evs, "", NewCategorySet())

	assert.Equal(t, evs, got)
}

func TestFilter_TextMatch(t *testing.T) {
	evs := sampleEvents()

	assert.Equal(t, []ID{"1"}, ids(Filter(evs, "jazz", nil)))
	assert.Equal(t, []ID{"1"}, ids(Filter(evs, "JAZZ", nil)), "match is case-insensitive")
	assert.Equal(t, []ID{"2"}, ids(Filter(evs, "painting", nil)), "description is searched")
	assert.Empty(t, Filter(evs, "opera", nil))
}

func TestFilter_TextMatchIsIdempotent(t *testing.T) {
	evs := sampleEvents()

	once := Filter(evs, "a", nil)
	twice := Filter(once, "a", nil)

	assert.Equal(t, once, twice)
}

func TestFilter_CategorySubsetSemantics(t *testing.T) {
	evs := sampleEvents()

	assert.Equal(t, []ID{"2"}, ids(Filter(evs, "", NewCategorySet("2"))))
	assert.Equal(t, []ID{"1", "2"}, ids(Filter(evs, "", NewCategorySet("1", "2"))))

	multi := []Event{{ID: "9", Title: "Mixed", CategoryIDs: []ID{"1", "2"}}}
	assert.Empty(t, Filter(multi, "", NewCategorySet("1")), "every event category must be selected")
	assert.Len(t, Filter(multi, "", NewCategorySet("1", "2", "3")), 1)
}

func TestFilter_EventWithoutCategoriesMatchesAnySelection(t *testing.T) {
	evs := []Event{{ID: "5", Title: "Untagged"}}

	assert.Len(t, Filter(evs, "", NewCategorySet("1")), 1)
	assert.Len(t, Filter(evs, "", NewCategorySet("42", "7")), 1)
}

func TestFilter_BothPredicatesAndOrder(t *testing.T) {
	evs := []Event{
		{ID: "a", Title: "Jazz brunch", CategoryIDs: []ID{"1"}},
		{ID: "b", Title: "Rock", Description: "not jazz", CategoryIDs: []ID{"2"}},
		{ID: "c", Title: "Jazz at night", CategoryIDs: []ID{"1"}},
		{ID: "d", Title: "Jazz expo", CategoryIDs: []ID{"3"}},
	}

	got := Filter(evs, "jazz", NewCategorySet("1", "2"))

	assert.Equal(t, []ID{"a", "b", "c"}, ids(got))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	evs := sampleEvents()
	before := ids(evs)

	_ = Filter(evs, "art", NewCategorySet("2"))

	assert.Equal(t, before, ids(evs))
}

func TestNewCategorySet_IgnoresEmptyIDs(t *testing.T) {
	s := NewCategorySet("", "1")

	assert.Len(t, s, 1)
	assert.True(t, s.Has("1"))
}
