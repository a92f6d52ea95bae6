package middleware

import (
	"github.com/freightwise/rates-api/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server so
// router setup receives a single wired object.
type Middlewares struct {
	// Global holds middleware applied to every route plus the global error
	// handler.
	Global *GlobalMiddlewares

	// ContextEnhancer installs the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// RateLimit enforces the per-client request budget on the rates route.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components from the application
// container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
