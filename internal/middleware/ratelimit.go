package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// LoginRateLimit returns a fixed-window per-IP limiter for the login
// endpoint, backed by Redis so it holds across replicas. When rdb is
// nil the limiter is disabled and requests pass through untouched.
func LoginRateLimit(rdb *redis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	if rdb == nil || limit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Only POSTs count as attempts; rendering the form is free.
			if c.Request().Method != http.MethodPost {
				return next(c)
			}
			key := "login_attempts:" + c.RealIP()
			ctx := c.Request().Context()

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				// Redis trouble must not lock users out.
				return next(c)
			}
			// ExpireNX arms the window once per key and also heals a
			// counter whose TTL was lost. If it fails the counter would
			// never reset, so drop it and fail open.
			if err := rdb.ExpireNX(ctx, key, window).Err(); err != nil {
				rdb.Del(ctx, key)
				return next(c)
			}
			if n > int64(limit) {
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "too many login attempts, try again later"})
			}
			return next(c)
		}
	}
}
