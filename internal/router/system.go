package router

import (
	"github.com/freightwise/rates-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not business logic.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint for load balancers and monitors.
	e.GET("/status", h.Health.CheckHealth)
}
