// Package config loads the application configuration from the process
// environment (optionally seeded from a `.env` file), maps it into structured
// Go types, and validates that required values are present so the service
// fails fast on bad or missing config.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process environment
	// before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix every configuration variable carries.
// Nesting uses a double underscore: RATES_DATABASE__HOST -> database.host.
const envPrefix = "RATES_"

// Config is the root configuration object for the application.
type Config struct {
	Primary   Primary         `koanf:"primary"`
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database" validate:"required"`
	Redis     RedisConfig     `koanf:"redis"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch behavior (e.g. SQL tracing in "local").
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development staging production"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
	LogLevel           string   `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFormat          string   `koanf:"log_format" validate:"oneof=json console"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
// Host, user, password, and name have no defaults and must come from the
// environment.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"min=1"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxConns        int    `koanf:"max_conns" validate:"min=1"`
	MinConns        int    `koanf:"min_conns" validate:"min=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"min=1"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"min=1"`
	// QueryTimeout bounds every single data-store round trip.
	QueryTimeout time.Duration `koanf:"query_timeout" validate:"min=1s"`
}

// RedisConfig contains Redis connection details. Address is "host:port".
// Redis is optional; an empty address disables it (and with it the
// rate limiter).
type RedisConfig struct {
	Address string `koanf:"address"`
}

// RateLimitConfig controls the per-client fixed-window rate limiter.
type RateLimitConfig struct {
	Enabled           bool `koanf:"enabled"`
	RequestsPerMinute int  `koanf:"requests_per_minute" validate:"min=1"`
}

// Load reads environment variables with the RATES_ prefix, unmarshals them
// into a Config, applies defaults for everything that was not provided, and
// validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.applyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills in every optional field that the environment left empty.
// Database credentials deliberately have no defaults.
func (c *Config) applyDefaults() {
	if c.Primary.Env == "" {
		c.Primary.Env = "local"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 20
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.LogLevel == "" {
		if c.Primary.Env == "local" {
			c.Server.LogLevel = "debug"
		} else {
			c.Server.LogLevel = "info"
		}
	}
	if c.Server.LogFormat == "" {
		if c.Primary.Env == "local" {
			c.Server.LogFormat = "console"
		} else {
			c.Server.LogFormat = "json"
		}
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = 10
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 1800
	}
	if c.Database.ConnMaxIdleTime == 0 {
		c.Database.ConnMaxIdleTime = 300
	}
	if c.Database.QueryTimeout == 0 {
		c.Database.QueryTimeout = 5 * time.Second
	}
	if c.RateLimit.RequestsPerMinute == 0 {
		c.RateLimit.RequestsPerMinute = 120
	}
}

// IsLocal reports whether the service runs in the local environment.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
