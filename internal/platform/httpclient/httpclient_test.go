package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestDoJSON_Non2xxReturnsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	err = c.Get(context.Background(), "/events", nil)
	var he *HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	if he.StatusCode != http.StatusInternalServerError || he.Body != "boom" {
		t.Fatalf("unexpected http error: %+v", he)
	}
	if StatusCode(err) != http.StatusInternalServerError {
		t.Fatalf("StatusCode() = %d", StatusCode(err))
	}
}

func TestDoJSON_SendsBodyAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		b, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(b), `"title":"x"`) {
			t.Errorf("unexpected body %s", string(b))
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":3}`))
	}))
	defer ts.Close()

	c, _ := NewWithBaseURL(ts.URL+"/", time.Second)

	var out struct {
		ID int `json:"id"`
	}
	if err := c.Post(context.Background(), "events", map[string]string{"title": "x"}, &out); err != nil {
		t.Fatalf("post: %v", err)
	}
	if out.ID != 3 {
		t.Fatalf("expected id 3, got %d", out.ID)
	}
}

func TestDoJSON_EmptyBodyIsOK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c, _ := NewWithBaseURL(ts.URL, time.Second)
	var out map[string]any
	if err := c.Delete(context.Background(), "/events/1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := c.Get(context.Background(), "/events/1", &out); err != nil {
		t.Fatalf("get with empty body: %v", err)
	}
}

func TestDoJSON_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c, _ := NewWithBaseURL(url, time.Second)
	err := c.Get(context.Background(), "/events", nil)
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if StatusCode(err) != 0 {
		t.Fatalf("transport errors carry no status")
	}
}

func TestResolveURL_RelativeWithoutBase(t *testing.T) {
	c := New(0)
	if _, err := c.resolveURL("/events"); err == nil {
		t.Fatalf("expected error for relative path without BaseURL")
	}
	if got, err := c.resolveURL("http://example.com/x"); err != nil || got != "http://example.com/x" {
		t.Fatalf("absolute url passthrough failed: %q %v", got, err)
	}
}
