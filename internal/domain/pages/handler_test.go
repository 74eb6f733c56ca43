package pages

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"events-console/internal/adapters/sessions/memory"

	"github.com/go-chi/chi/v5"
)

func newTestServer(t *testing.T, store *fakeStore) (*httptest.Server, *memory.Store) {
	t.Helper()

	sessStore := memory.NewStore()
	r := chi.NewRouter()
	RegisterRoutes(r, NewController(store, Options{}), NewSessions(sessStore, 0), nil)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, sessStore
}

func call(t *testing.T, baseURL, method, path string, body any) (int, pageResponse, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	raw, _ := io.ReadAll(res.Body)
	var pr pageResponse
	_ = json.Unmarshal(raw, &pr)
	return res.StatusCode, pr, raw
}

func TestHTTP_DeleteFailureKeepsDetailPage(t *testing.T) {
	store := newFakeStore()
	store.deleteErr = serverError
	ts, _ := newTestServer(t, store)

	st, page, body := call(t, ts.URL, http.MethodPost, "/pages/events/1", nil)
	if st != http.StatusCreated || page.SessionID == "" {
		t.Fatalf("expected 201 entering detail, got %d body=%s", st, string(body))
	}
	if page.Detail.CreatorName != "Ann" || page.Detail.Categories[0].Name != "music" {
		t.Fatalf("unexpected detail view: %s", string(body))
	}
	sid := page.SessionID

	// confirmar sin pedir => 409
	if st, _, _ := call(t, ts.URL, http.MethodPost, "/pages/sessions/"+sid+"/delete/confirm", nil); st != http.StatusConflict {
		t.Fatalf("expected 409 confirming without request, got %d", st)
	}

	if st, page, _ := call(t, ts.URL, http.MethodPost, "/pages/sessions/"+sid+"/delete", nil); st != http.StatusOK || !page.Detail.DeletePending {
		t.Fatalf("expected pending delete, got %d %+v", st, page.Detail)
	}

	st, page, body = call(t, ts.URL, http.MethodPost, "/pages/sessions/"+sid+"/delete/confirm", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 with error notification, got %d body=%s", st, string(body))
	}
	if page.Navigate != "" {
		t.Fatalf("must not navigate on failed delete: %s", string(body))
	}
	if page.Notification == nil || page.Notification.Status != StatusError || page.Notification.Title != "Failed to delete event." {
		t.Fatalf("expected one failure notification: %s", string(body))
	}
	if page.Detail == nil || page.Detail.Event.Title != "Jazz Night" {
		t.Fatalf("detail must still show the original event: %s", string(body))
	}

	// la sesión sigue viva
	if st, page, _ := call(t, ts.URL, http.MethodGet, "/pages/sessions/"+sid, nil); st != http.StatusOK || page.Detail.Event.ID != "1" {
		t.Fatalf("session should survive a failed delete, got %d", st)
	}
}

func TestHTTP_DeleteSuccessDiscardsSession(t *testing.T) {
	store := newFakeStore()
	ts, sessStore := newTestServer(t, store)

	_, page, _ := call(t, ts.URL, http.MethodPost, "/pages/events/1", nil)
	sid := page.SessionID

	call(t, ts.URL, http.MethodPost, "/pages/sessions/"+sid+"/delete", nil)
	st, page, body := call(t, ts.URL, http.MethodPost, "/pages/sessions/"+sid+"/delete/confirm", nil)
	if st != http.StatusOK || page.Navigate != ListPath {
		t.Fatalf("expected navigation to list, got %d body=%s", st, string(body))
	}
	if sessStore.Len() != 0 {
		t.Fatalf("session must be discarded on navigation")
	}
	if st, _, _ := call(t, ts.URL, http.MethodGet, "/pages/sessions/"+sid, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 after navigation, got %d", st)
	}
}

func TestHTTP_CreateFlow(t *testing.T) {
	store := newFakeStore()
	ts, sessStore := newTestServer(t, store)

	st, page, body := call(t, ts.URL, http.MethodPost, "/pages/events/new", nil)
	if st != http.StatusCreated || page.Kind != KindCreate {
		t.Fatalf("expected create session, got %d body=%s", st, string(body))
	}
	sid := page.SessionID

	// submit incompleto => 400, sin POST
	if st, _, _ := call(t, ts.URL, http.MethodPost, "/pages/sessions/"+sid+"/submit", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty draft, got %d", st)
	}

	st, page, body = call(t, ts.URL, http.MethodPatch, "/pages/sessions/"+sid+"/draft", map[string]any{
		"fields": map[string]string{
			"title":       "Art Expo",
			"description": "painting show",
			"startTime":   "2024-04-01T10:00",
			"endTime":     "2024-04-01T18:00",
		},
		"categories": []int{2},
	})
	if st != http.StatusOK || page.Create.Draft.Title != "Art Expo" || len(page.Create.Categories) != 1 {
		t.Fatalf("unexpected draft patch response %d body=%s", st, string(body))
	}

	st, page, body = call(t, ts.URL, http.MethodPost, "/pages/sessions/"+sid+"/submit", nil)
	if st != http.StatusOK || page.Navigate != ListPath {
		t.Fatalf("expected navigation to list, got %d body=%s", st, string(body))
	}
	if len(store.created) != 1 || len(store.created[0].CategoryIDs) != 0 || store.created[0].CreatedBy != DefaultCreatorID {
		t.Fatalf("unexpected created record: %+v", store.created)
	}
	if sessStore.Len() != 0 {
		t.Fatalf("create session must be discarded after navigating")
	}
}

func TestHTTP_EditFlow(t *testing.T) {
	store := newFakeStore()
	ts, _ := newTestServer(t, store)

	_, page, _ := call(t, ts.URL, http.MethodPost, "/pages/events/1", nil)
	sid := page.SessionID

	patch := map[string]any{"fields": map[string]string{"title": "Renamed"}}
	if st, _, _ := call(t, ts.URL, http.MethodPatch, "/pages/sessions/"+sid+"/draft", patch); st != http.StatusConflict {
		t.Fatalf("expected 409 editing with closed form, got %d", st)
	}

	call(t, ts.URL, http.MethodPost, "/pages/sessions/"+sid+"/edit", nil)

	bad := map[string]any{"fields": map[string]string{"location": "x"}}
	if st, _, _ := call(t, ts.URL, http.MethodPatch, "/pages/sessions/"+sid+"/draft", bad); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for non editable field, got %d", st)
	}

	if st, page, _ := call(t, ts.URL, http.MethodPatch, "/pages/sessions/"+sid+"/draft", patch); st != http.StatusOK || page.Detail.Draft.Title != "Renamed" {
		t.Fatalf("unexpected patch result %d", st)
	}

	st, page, body := call(t, ts.URL, http.MethodPost, "/pages/sessions/"+sid+"/submit", nil)
	if st != http.StatusOK || page.Notification == nil || page.Notification.Title != "Event updated." {
		t.Fatalf("unexpected submit result %d body=%s", st, string(body))
	}
	if page.Detail.Editing {
		t.Fatalf("form should be closed after save")
	}
	if page.Detail.Event.Title != "Jazz Night" {
		t.Fatalf("detail keeps the event loaded on entry, got %q", page.Detail.Event.Title)
	}
	if store.updated[0].Title != "Renamed" || store.updated[0].Location != "Blue Note" {
		t.Fatalf("unexpected PUT body: %+v", store.updated[0])
	}
}

func TestHTTP_ListPage(t *testing.T) {
	ts, _ := newTestServer(t, newFakeStore())

	res, err := http.Get(ts.URL + "/pages/events?q=JAZZ&categories=1,2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer res.Body.Close()

	var v ListView
	_ = json.NewDecoder(res.Body).Decode(&v)
	if res.StatusCode != http.StatusOK || len(v.Events) != 1 || len(v.Selected) != 2 {
		t.Fatalf("unexpected list view %d %+v", res.StatusCode, v)
	}

	res2, _ := http.Get(ts.URL + "/pages/events?category=9&q=jazz")
	defer res2.Body.Close()
	var v2 ListView
	_ = json.NewDecoder(res2.Body).Decode(&v2)
	if len(v2.Events) != 0 || v2.Message != NoMatchesMessage {
		t.Fatalf("expected no matches, got %+v", v2)
	}
}

func TestHTTP_UnknownSessionAndEvent(t *testing.T) {
	ts, _ := newTestServer(t, newFakeStore())

	if st, _, _ := call(t, ts.URL, http.MethodGet, "/pages/sessions/00000000-0000-0000-0000-000000000000", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown session, got %d", st)
	}
	if st, _, _ := call(t, ts.URL, http.MethodPost, "/pages/events/404", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown event, got %d", st)
	}
}

func TestHTTP_LeaveSession(t *testing.T) {
	ts, sessStore := newTestServer(t, newFakeStore())

	_, page, _ := call(t, ts.URL, http.MethodPost, "/pages/events/new", nil)
	if st, _, _ := call(t, ts.URL, http.MethodDelete, "/pages/sessions/"+page.SessionID, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 leaving page, got %d", st)
	}
	if sessStore.Len() != 0 {
		t.Fatalf("session should be gone")
	}
}
