package middleware

import (
	"fmt"
	"time"

	"github.com/freightwise/rates-api/internal/errs"
	"github.com/freightwise/rates-api/internal/server"
	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware enforces a fixed-window per-client request budget
// backed by redis. The window key combines route, client IP, and the
// current minute; INCR on a fresh key creates it, and the expiry outlives
// the window so keys clean themselves up.
type RateLimitMiddleware struct {
	server *server.Server
}

// NewRateLimitMiddleware constructs the rate limiter.
func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{server: s}
}

// Limit returns the enforcement middleware. It is a no-op when rate
// limiting is disabled or redis is not configured, and fails open on redis
// errors.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !r.server.Config.RateLimit.Enabled || r.server.Redis == nil {
				return next(c)
			}

			window := time.Now().Unix() / 60
			key := fmt.Sprintf("ratelimit:%s:%s:%d", c.Path(), c.RealIP(), window)

			ctx := c.Request().Context()
			count, err := r.server.Redis.Incr(ctx, key).Result()
			if err != nil {
				GetLogger(c).Debug().Err(err).Msg("rate limiter unavailable, failing open")
				return next(c)
			}
			if count == 1 {
				r.server.Redis.Expire(ctx, key, 2*time.Minute)
			}

			if count > int64(r.server.Config.RateLimit.RequestsPerMinute) {
				return errs.NewTooManyRequestsError()
			}

			return next(c)
		}
	}
}
