package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/MehdiDinari/ADEI-Repo/internal/api/metrics"
)

// CounterStore counts hits per key within a fixed window. Implemented
// in-memory for single-instance deployments and on Redis for shared
// counting across instances.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int64, ttl time.Duration, err error)
}

// RateLimitConfig parameterises the fixed-window limiter.
type RateLimitConfig struct {
	Store CounterStore
	// Limit is the number of requests allowed per window per client IP.
	Limit int64
	// Window is the fixed window duration.
	Window time.Duration
	// Scope labels the rate_limited_total metric ("auth", "api"...).
	Scope string
	Log   zerolog.Logger
}

// RateLimit throttles requests per client IP. On rejection it returns
// 429 with a Retry-After hint derived from the remaining window. A
// failing counter store fails open: throttling is protection, not a
// dependency worth refusing logins over.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			count, ttl, err := cfg.Store.Incr(c.Request().Context(), c.RealIP(), cfg.Window)
			if err != nil {
				cfg.Log.Warn().Err(err).Msg("rate limit store unavailable, failing open")
				return next(c)
			}

			if count > cfg.Limit {
				metrics.RateLimitedTotal.WithLabelValues(cfg.Scope).Inc()
				retryAfter := int(math.Ceil(ttl.Seconds()))
				if retryAfter < 1 {
					retryAfter = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, retry later")
			}

			return next(c)
		}
	}
}
