package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const Prefix = "EVENTS"

const (
	StoreREST   = "rest"
	StoreMemory = "memory"

	SessionsMemory = "memory"
	SessionsRedis  = "redis"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config se lee de variables EVENTS_*; un .env en el cwd es opcional.
type Config struct {
	AppName string `envconfig:"APP_NAME" default:"events-console"`
	Port    int    `envconfig:"PORT" default:"8080"`

	StoreURL    string        `envconfig:"STORE_URL" default:"http://localhost:3000"`
	StoreDriver string        `envconfig:"STORE_DRIVER" default:"rest"`
	StoreSeed   string        `envconfig:"STORE_SEED"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	// CreatorID es el usuario fijo que figura como autor de los eventos nuevos.
	CreatorID string `envconfig:"CREATOR_ID" default:"1"`

	SessionDriver string        `envconfig:"SESSION_DRIVER" default:"memory"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"30m"`

	RedisURL      string `envconfig:"REDIS_URL" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load carga .env (si existe) y después el entorno. Lo que ya está en el
// entorno no se pisa.
func Load(dotenvFiles ...string) (Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	cfg.SessionDriver = strings.ToLower(strings.TrimSpace(cfg.SessionDriver))
	cfg.StoreURL = strings.TrimRight(strings.TrimSpace(cfg.StoreURL), "/")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreREST:
		if c.StoreURL == "" {
			return fmt.Errorf("%w: %s_STORE_URL is required for the rest driver", ErrInvalidConfig, Prefix)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("%w: unknown store driver %q", ErrInvalidConfig, c.StoreDriver)
	}

	switch c.SessionDriver {
	case SessionsMemory, SessionsRedis:
	default:
		return fmt.Errorf("%w: unknown session driver %q", ErrInvalidConfig, c.SessionDriver)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if strings.TrimSpace(c.CreatorID) == "" {
		return fmt.Errorf("%w: %s_CREATOR_ID is empty", ErrInvalidConfig, Prefix)
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
