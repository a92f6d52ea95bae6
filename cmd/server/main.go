package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/freightwise/rates-api/internal/config"
	"github.com/freightwise/rates-api/internal/database"
	"github.com/freightwise/rates-api/internal/handler"
	"github.com/freightwise/rates-api/internal/logger"
	"github.com/freightwise/rates-api/internal/middleware"
	"github.com/freightwise/rates-api/internal/repository"
	"github.com/freightwise/rates-api/internal/router"
	"github.com/freightwise/rates-api/internal/server"
	"github.com/freightwise/rates-api/internal/service"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(cfg)

	ctx := context.Background()

	if err := database.Migrate(ctx, &appLogger, cfg); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to migrate database schema")
	}

	srv, err := server.New(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize server")
	}

	mws := middleware.NewMiddlewares(srv)
	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)

	e := router.New(srv, mws, handlers)
	srv.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		appLogger.Fatal().Err(err).Msg("server failed")
	case sig := <-quit:
		appLogger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	appLogger.Info().Msg("server stopped")
}
