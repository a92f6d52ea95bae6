// Package logger configures the application's structured logging.
//
// It builds the root zerolog logger from config (console output for local
// development, JSON for everything else) and provides the adapter pieces
// needed to route pgx query tracing through zerolog.
package logger

import (
	"os"
	"time"

	"github.com/freightwise/rates-api/internal/config"
	"github.com/rs/zerolog"
)

// New builds the root application logger from config.
func New(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Server.LogFormat == "console" {
		output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		logger = zerolog.New(output)
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", "rates-api").
		Str("env", cfg.Primary.Env).
		Logger()
}

// NewPgxLogger returns a logger dedicated to pgx query tracing.
// It is separated from the root logger so SQL noise can be told apart
// (and filtered) by its component field.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// PgxTraceLogLevel maps a zerolog level onto the pgx tracelog level scale.
// tracelog levels: 0 none, 1 error, 2 warn, 3 info, 4 debug, 5 trace.
func PgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 5
	case zerolog.DebugLevel:
		return 4
	case zerolog.InfoLevel:
		return 3
	case zerolog.WarnLevel:
		return 2
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return 1
	default:
		return 0
	}
}
