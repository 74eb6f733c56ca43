package router

import (
	"net/http"
	"time"

	mem "events-console/internal/adapters/storage/memory"
	sessmem "events-console/internal/adapters/sessions/memory"
	"events-console/internal/domain/events"
	"events-console/internal/domain/pages"
	"events-console/internal/middleware"
	"events-console/internal/platform/logger"
	"events-console/internal/ports/sessions"

	_ "events-console/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Store: si es nil, store in-memory vacío (modo dev).
	Store events.Store

	// Sessions: si es nil, sesiones in-memory.
	Sessions   sessions.Store
	SessionTTL time.Duration

	CreatorID events.ID
	Logger    logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	store := opts.Store
	if store == nil {
		store = mem.NewEventStore()
	}
	sessStore := opts.Sessions
	if sessStore == nil {
		sessStore = sessmem.NewStore()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	ctrl := pages.NewController(store, pages.Options{CreatorID: opts.CreatorID, Logger: log})
	pages.RegisterRoutes(r, ctrl, pages.NewSessions(sessStore, opts.SessionTTL), log)

	return r
}
