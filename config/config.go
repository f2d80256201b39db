package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/go-pg/pg/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultPort                = 3000
	DefaultNewsCountOnHomePage = 10
	DefaultSessionTTL          = 14 * 24 * time.Hour
)

type Config struct {
	Database pg.Options
	App      struct {
		Host                string
		Port                int
		NewsCountOnHomePage int
		SessionTTL          time.Duration
		SecureCookie        bool
		LogQueries          bool
		SentryDSN           string
	}
}

// overrides are read from the environment after the TOML file.
type overrides struct {
	Port                int           `env:"PORT"`
	DatabaseURL         string        `env:"DATABASE_URL"`
	NewsCountOnHomePage int           `env:"NEWS_COUNT_ON_HOME_PAGE"`
	SessionTTL          time.Duration `env:"SESSION_TTL"`
	LogQueries          *bool         `env:"DB_LOG_QUERIES"`
	MaxConns            int           `env:"DB_MAX_CONNS"`
	MaxConnLifetime     time.Duration `env:"DB_MAX_CONN_LIFETIME"`
	SentryDSN           string        `env:"SENTRY_DSN"`
}

func Default() Config {
	var cfg Config
	cfg.Database.Addr = "localhost:5432"
	cfg.Database.MaxRetries = 3
	cfg.App.Port = DefaultPort
	cfg.App.NewsCountOnHomePage = DefaultNewsCountOnHomePage
	cfg.App.SessionTTL = DefaultSessionTTL
	return cfg
}

// Load reads the TOML file at path (a missing file is not an error), then an
// optional .env file, then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	var ov overrides
	if err := env.Parse(&ov); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.apply(ov); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) apply(ov overrides) error {
	if ov.DatabaseURL != "" {
		opt, err := pg.ParseURL(ov.DatabaseURL)
		if err != nil {
			return fmt.Errorf("parse DATABASE_URL: %w", err)
		}
		opt.MaxRetries = c.Database.MaxRetries
		opt.PoolSize = c.Database.PoolSize
		opt.MaxConnAge = c.Database.MaxConnAge
		c.Database = *opt
	}
	if ov.MaxConns != 0 {
		c.Database.PoolSize = ov.MaxConns
	}
	if ov.MaxConnLifetime != 0 {
		c.Database.MaxConnAge = ov.MaxConnLifetime
	}
	if ov.Port != 0 {
		c.App.Port = ov.Port
	}
	if ov.NewsCountOnHomePage != 0 {
		c.App.NewsCountOnHomePage = ov.NewsCountOnHomePage
	}
	if ov.SessionTTL != 0 {
		c.App.SessionTTL = ov.SessionTTL
	}
	if ov.SentryDSN != "" {
		c.App.SentryDSN = ov.SentryDSN
	}
	if ov.LogQueries != nil {
		c.App.LogQueries = *ov.LogQueries
	}

	return nil
}
