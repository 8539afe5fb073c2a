package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is populated from GRILLER_* environment variables.
type Config struct {
	// Base URL of the remote restaurant service that owns all durable truth.
	RemoteBaseURL string `envconfig:"REMOTE_BASE_URL" default:"https://restaurant-backend-u1nf.onrender.com"`

	// Address the local consumer surface listens on.
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`

	// Directory for the durable session file. Defaults to ~/.thegriller.
	StateDir string `envconfig:"STATE_DIR"`

	// When set, session state is kept in redis instead of a local file.
	RedisAddr string `envconfig:"REDIS_ADDR"`

	// Per-request deadline for calls to the remote service.
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("griller", &cfg); err != nil {
		return nil, err
	}

	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.StateDir = filepath.Join(home, ".thegriller")
	}

	return &cfg, nil
}
