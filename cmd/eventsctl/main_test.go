package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	mu        sync.Mutex
	deletes   int
	deleteErr bool
	posted    []map[string]any
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/events":
		_, _ = w.Write([]byte(`[
			{"id":1,"title":"Jazz Night","description":"live jazz","location":"Blue Note","startTime":"2024-03-15T19:00:00.000Z","categoryIds":[1],"createdBy":7},
			{"id":2,"title":"Art Expo","description":"painting show","categoryIds":[2],"createdBy":1}
		]`))
	case r.Method == http.MethodGet && r.URL.Path == "/events/1":
		_, _ = w.Write([]byte(`{"id":1,"title":"Jazz Night","description":"live jazz","location":"Blue Note","startTime":"2024-03-15T19:00:00.000Z","categoryIds":[1],"createdBy":7}`))
	case r.Method == http.MethodGet && r.URL.Path == "/users":
		_, _ = w.Write([]byte(`[{"id":7,"name":"Ann"}]`))
	case r.Method == http.MethodGet && r.URL.Path == "/categories":
		_, _ = w.Write([]byte(`[{"id":1,"name":"music"},{"id":2,"name":"art"}]`))
	case r.Method == http.MethodPost && r.URL.Path == "/events":
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.posted = append(b.posted, body)
		body["id"] = 3
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	case r.Method == http.MethodDelete && r.URL.Path == "/events/1":
		b.deletes++
		if b.deleteErr {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func run(t *testing.T, url string, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	a := newApp(strings.NewReader(stdin), &out, &errOut)
	err := a.Run(append([]string{"eventsctl", "--store-url", url}, args...))
	return out.String(), errOut.String(), err
}

func newBackend(t *testing.T) (*backend, string) {
	t.Helper()
	b := &backend{}
	ts := httptest.NewServer(b)
	t.Cleanup(ts.Close)
	return b, ts.URL
}

func TestList_FiltersLocally(t *testing.T) {
	_, url := newBackend(t)

	out, _, err := run(t, url, "", "list", "--q", "JAZZ")
	require.NoError(t, err)
	assert.Contains(t, out, "Jazz Night")
	assert.Contains(t, out, "music")
	assert.NotContains(t, out, "Art Expo")

	out, _, err = run(t, url, "", "list", "--category", "1", "--q", "painting")
	require.NoError(t, err)
	assert.Contains(t, out, "No matching events found.")
}

func TestShow_PrintsCreatorAndCategories(t *testing.T) {
	_, url := newBackend(t)

	out, _, err := run(t, url, "", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "music")
	assert.Contains(t, out, "Mar 15, 2024 19:00")
}

func TestShow_LoadFailure(t *testing.T) {
	_, url := newBackend(t)

	_, _, err := run(t, url, "", "show", "99")
	assert.Error(t, err)
}

func TestCreate_SendsFixedCreatorAndNoCategories(t *testing.T) {
	b, url := newBackend(t)

	_, errOut, err := run(t, url, "", "create",
		"--title", "Opera Gala", "--description", "arias",
		"--start", "2024-05-01T20:00", "--end", "2024-05-01T23:00",
		"--category", "1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Event added.")

	b.mu.Lock()
	defer b.mu.Unlock()
	require.Len(t, b.posted, 1)
	assert.Equal(t, float64(1), b.posted[0]["createdBy"])
	assert.Equal(t, []any{}, b.posted[0]["categoryIds"])
}

func TestDelete_PromptDeclined(t *testing.T) {
	b, url := newBackend(t)

	_, errOut, err := run(t, url, "n\n", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Cancelled.")

	b.mu.Lock()
	defer b.mu.Unlock()
	assert.Equal(t, 0, b.deletes)
}

func TestDelete_Rejected(t *testing.T) {
	b, url := newBackend(t)
	b.deleteErr = true

	_, errOut, err := run(t, url, "", "delete", "--yes", "1")
	assert.True(t, errors.Is(err, errNotified))
	assert.Contains(t, errOut, "Failed to delete event.")
	assert.Equal(t, 1, strings.Count(errOut, "[error]"))

	b.mu.Lock()
	defer b.mu.Unlock()
	assert.Equal(t, 1, b.deletes)
}

func TestDelete_Confirmed(t *testing.T) {
	_, url := newBackend(t)

	_, errOut, err := run(t, url, "y\n", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Event deleted.")
}
