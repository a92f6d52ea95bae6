// Package router initializes the HTTP router (Echo).
//
// It registers the middleware chain in its load-bearing order and maps the
// API routes to their handlers.
package router

import (
	"net/http"

	"github.com/freightwise/rates-api/internal/handler"
	"github.com/freightwise/rates-api/internal/middleware"
	"github.com/freightwise/rates-api/internal/server"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance: error handler, middleware chain, routes.
// RequestID must run before the context enhancer, which must run before
// anything that logs.
func New(s *server.Server, mws *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	e.Use(middleware.RequestID())
	e.Use(mws.ContextEnhancer.EnhanceContext())
	e.Use(mws.Global.RequestLogger())
	e.Use(mws.Global.Recover())
	e.Use(mws.Global.Secure())
	e.Use(mws.Global.CORS())

	registerRateRoutes(e, mws, h)
	registerSystemRoutes(e, h)

	return e
}

// registerRateRoutes maps the business routes.
func registerRateRoutes(e *echo.Echo, mws *middleware.Middlewares, h *handler.Handlers) {
	e.GET("/rates", handler.Handle(h.Rates.GetRates, http.StatusOK), mws.RateLimit.Limit())
}
