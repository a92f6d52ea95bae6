// Package database establishes the PostgreSQL connection pool and runs
// schema migrations.
//
// It builds the DSN from config, tunes the pgx pool, and wires SQL query
// tracing through zerolog in the local environment.
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	loggerPkg "github.com/freightwise/rates-api/internal/logger"

	"github.com/freightwise/rates-api/internal/config"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// pingTimeout bounds the startup connectivity check.
const pingTimeout = 10 * time.Second

// Database wraps the pgx connection pool and a logger for lifecycle events.
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// dsn builds a postgres:// connection string from config.
// The password is URL-escaped so special characters cannot break the DSN.
func dsn(cfg *config.Config) string {
	hostPort := net.JoinHostPort(cfg.Database.Host, strconv.Itoa(cfg.Database.Port))
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Database.User,
		url.QueryEscape(cfg.Database.Password),
		hostPort,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)
}

// New creates the PostgreSQL connection pool and verifies connectivity.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("parsing pgx pool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Second
	poolConfig.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second

	// SQL query logging is noisy, so it is limited to the local environment.
	if cfg.IsLocal() {
		level := logger.GetLevel()
		pgxLogger := loggerPkg.NewPgxLogger(level)
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: tracelog.LogLevel(loggerPkg.PgxTraceLogLevel(level)),
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	logger.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.Name).
		Msg("connected to the database")

	return &Database{Pool: pool, log: logger}, nil
}

// Close closes the database connection pool.
func (db *Database) Close() {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
}
