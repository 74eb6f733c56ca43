package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"events-console/internal/ports/sessions"

	"github.com/go-redis/redis/v8"
)

const defaultPrefix = "events-console:session:"

type Config struct {
	Addr     string
	Password string
	DB       int

	// Prefix de las keys; vacío => defaultPrefix.
	Prefix string
}

// Store guarda cada sesión como un string JSON con EX (SET key value EX ttl).
type Store struct {
	client *redis.Client
	prefix string
}

var _ sessions.Store = (*Store)(nil)

func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewStore(client *redis.Client, prefix string) *Store {
	if strings.TrimSpace(prefix) == "" {
		prefix = defaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

func (s *Store) Put(ctx context.Context, id string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(id), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) ([]byte, error) {
	b, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sessions.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	return b, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, s.key(id)).Result()
	if err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	if n == 0 {
		return sessions.ErrNotFound
	}
	return nil
}

// Ping verifica la conexión al arrancar.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
