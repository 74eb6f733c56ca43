package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"events-console/internal/app"
	"events-console/internal/config"
	"events-console/internal/domain/events"
	"events-console/internal/router"
)

// @title events-console API
// @version 1.0
// @description BFF de la consola de eventos: listado filtrado, alta, detalle, edición y borrado sobre el event store REST.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := app.NewLogger(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := app.NewStore(cfg, log)
	if err != nil {
		return fmt.Errorf("event store: %w", err)
	}

	sess, closeSessions, err := app.NewSessionStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeSessions(); err != nil {
			log.Warn("close sessions failed", map[string]any{"error": err})
		}
	}()

	r := router.NewRouter(router.Options{
		Store:      store,
		Sessions:   sess,
		SessionTTL: cfg.SessionTTL,
		CreatorID:  events.ParseID(cfg.CreatorID),
		Logger:     log,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.HTTPTimeout + 5*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
