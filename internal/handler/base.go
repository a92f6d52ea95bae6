package handler

import (
	"time"

	"github.com/freightwise/rates-api/internal/middleware"
	"github.com/freightwise/rates-api/internal/server"
	"github.com/freightwise/rates-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// Handler is the base type embedded by concrete handlers so they share the
// application container.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// bindable constrains a request pointer type to one that Echo can populate
// and the validation package can validate.
type bindable[Req any] interface {
	*Req
	validation.Validatable
}

// Handle wraps a typed endpoint function into an echo.HandlerFunc.
//
// Per request it allocates a fresh payload, binds and validates it, executes
// the endpoint, logs the outcome with timings, and writes the JSON response
// with the given status. Errors propagate to the global error handler.
func Handle[Req any, PReq bindable[Req], Res any](
	endpoint func(c echo.Context, req PReq) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		logger := middleware.GetLogger(c)

		req := PReq(new(Req))
		if err := validation.BindAndValidate(c, req); err != nil {
			logger.Warn().
				Err(err).
				Dur("duration", time.Since(start)).
				Msg("request validation failed")
			return err
		}

		result, err := endpoint(c, req)
		if err != nil {
			logger.Warn().
				Err(err).
				Dur("duration", time.Since(start)).
				Msg("handler execution failed")
			return err
		}

		logger.Info().
			Dur("duration", time.Since(start)).
			Msg("request completed")

		return c.JSON(status, result)
	}
}
