package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deskhive/booking-system/internal/api/metrics"
)

// RateLimitMessage is the fixed rejection body text, matching the API contract.
const RateLimitMessage = "Too many requests! Please try again in an hour!"

// RequestCounter abstracts the fixed-window counter store (Redis).
type RequestCounter interface {
	Incr(ctx context.Context, clientKey string) (int64, error)
}

// RateLimit caps requests per client IP within a fixed window. The limiter is
// advisory: when the counter store is unreachable the request is let through
// with a warning rather than failing the whole API.
func RateLimit(counter RequestCounter, limit int, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			n, err := counter.Incr(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("rate limiter unavailable, failing open")
				return next(c)
			}

			if n > int64(limit) {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, RateLimitMessage)
			}

			return next(c)
		}
	}
}
