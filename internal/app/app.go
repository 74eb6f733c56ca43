package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"events-console/internal/adapters/eventstore/rest"
	sessmem "events-console/internal/adapters/sessions/memory"
	sessredis "events-console/internal/adapters/sessions/redis"
	mem "events-console/internal/adapters/storage/memory"
	"events-console/internal/config"
	"events-console/internal/domain/events"
	"events-console/internal/platform/logger"
	"events-console/internal/ports/sessions"
)

func NewLogger(cfg config.Config, out io.Writer) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		Out:    out,
	})
}

// NewStore arma el events.Store según EVENTS_STORE_DRIVER.
func NewStore(cfg config.Config, log logger.Logger) (events.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		s, err := mem.NewEventStoreFromFile(cfg.StoreSeed)
		if err != nil {
			return nil, err
		}
		log.Info("using in-memory event store", map[string]any{"seed": cfg.StoreSeed})
		return s, nil
	default:
		c, err := rest.NewClient(rest.Config{BaseURL: cfg.StoreURL, Timeout: cfg.HTTPTimeout})
		if err != nil {
			return nil, err
		}
		log.Info("using rest event store", map[string]any{"base_url": cfg.StoreURL, "timeout": cfg.HTTPTimeout.String()})
		return c, nil
	}
}

// NewSessionStore devuelve el store y un close. Con redis hace ping antes de
// devolverlo.
func NewSessionStore(ctx context.Context, cfg config.Config, log logger.Logger) (sessions.Store, func() error, error) {
	if cfg.SessionDriver != config.SessionsRedis {
		log.Info("using in-memory sessions", map[string]any{"ttl": cfg.SessionTTL.String()})
		return sessmem.NewStore(), func() error { return nil }, nil
	}

	client := sessredis.NewClient(sessredis.Config{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	store := sessredis.NewStore(client, cfg.AppName+":session:")

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("redis sessions at %s: %w", cfg.RedisURL, err)
	}

	log.Info("using redis sessions", map[string]any{"addr": cfg.RedisURL, "db": cfg.RedisDB, "ttl": cfg.SessionTTL.String()})
	return store, store.Close, nil
}
