// Package server defines the application container that composes the
// service's shared dependencies (config, logger, database pool, optional
// redis client, HTTP server) and owns their lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/freightwise/rates-api/internal/config"
	"github.com/freightwise/rates-api/internal/database"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Server holds the shared resources of the running application.
// It is not the HTTP server itself; that lives in httpServer and is
// configured via SetupHTTPServer.
type Server struct {
	Config *config.Config
	Logger *zerolog.Logger
	DB     *database.Database

	// Redis backs the rate limiter. It is optional: nil when no address is
	// configured, in which case rate limiting is disabled.
	Redis *redis.Client

	httpServer *http.Server
}

// New constructs a Server and initializes its dependencies. The database
// must be reachable; redis is allowed to fail (the limiter fails open).
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Server, error) {
	db, err := database.New(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Address,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			logger.Error().Err(err).Msg("failed to connect to redis, continuing without it")
		}
	}

	return &Server{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Redis:  redisClient,
	}, nil
}

// SetupHTTPServer configures the internal net/http server with the router.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires, then releases the
// database pool and redis client.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}

	s.DB.Close()

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			return fmt.Errorf("closing redis client: %w", err)
		}
	}

	return nil
}
