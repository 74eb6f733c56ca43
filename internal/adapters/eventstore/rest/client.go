package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"events-console/internal/domain/events"
	"events-console/internal/platform/httpclient"
)

var (
	ErrStoreNotConfigured = errors.New("event store client not configured")
	ErrStoreUpstream      = errors.New("event store upstream error")
)

// Config del cliente del store remoto (API JSON estilo json-server).
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Transport opcional (tests).
	Transport http.RoundTripper
}

// Client implementa events.Store contra:
//
//	GET /events, GET /events/{id}, POST /events, PUT /events/{id},
//	DELETE /events/{id}, GET /users, GET /categories
//
// Sin headers de auth ni query params: el filtrado es local.
type Client struct {
	http *httpclient.Client
}

var _ events.Store = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrStoreNotConfigured
	}

	hc := httpclient.NewWithTransport(cfg.Timeout, cfg.Transport)
	if err := hc.SetBaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

func eventPath(id events.ID) string {
	return "/events/" + url.PathEscape(id.String())
}

func (c *Client) ListEvents(ctx context.Context) ([]events.Event, error) {
	var out []events.Event
	if err := c.http.Get(ctx, "/events", &out); err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (c *Client) GetEvent(ctx context.Context, id events.ID) (events.Event, error) {
	if id.IsZero() {
		return events.Event{}, events.ErrInvalidInput
	}
	var out events.Event
	if err := c.http.Get(ctx, eventPath(id), &out); err != nil {
		return events.Event{}, wrap(err)
	}
	return out, nil
}

func (c *Client) CreateEvent(ctx context.Context, e events.Event) (events.Event, error) {
	e.ID = ""
	var out events.Event
	if err := c.http.Post(ctx, "/events", e, &out); err != nil {
		return events.Event{}, wrap(err)
	}
	return out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, e events.Event) (events.Event, error) {
	if e.ID.IsZero() {
		return events.Event{}, events.ErrInvalidInput
	}
	var out events.Event
	if err := c.http.Put(ctx, eventPath(e.ID), e, &out); err != nil {
		return events.Event{}, wrap(err)
	}
	return out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id events.ID) error {
	if id.IsZero() {
		return events.ErrInvalidInput
	}
	return wrap(c.http.Delete(ctx, eventPath(id)))
}

func (c *Client) ListUsers(ctx context.Context) ([]events.User, error) {
	var out []events.User
	if err := c.http.Get(ctx, "/users", &out); err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]events.Category, error) {
	var out []events.Category
	if err := c.http.Get(ctx, "/categories", &out); err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

// wrap conserva el *HTTPError (status) y agrega el sentinel del dominio.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	if httpclient.StatusCode(err) == http.StatusNotFound {
		return fmt.Errorf("%w: %w", events.ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrStoreUpstream, err)
}
