package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/maisonlila/restaurant-booking/internal/config"
)

// windowScript implements a fixed-window counter: the first hit in a window
// creates the key with an expiry, later hits increment it.  Returns the
// count after increment and the remaining window in milliseconds.
var windowScript = redis.NewScript(`
    local key = KEYS[1]
    local window_ms = tonumber(ARGV[1])

    local count = redis.call('INCR', key)
    if count == 1 then
        redis.call('PEXPIRE', key, window_ms)
    end
    local ttl = redis.call('PTTL', key)
    if ttl < 0 then
        redis.call('PEXPIRE', key, window_ms)
        ttl = window_ms
    end
    return { count, ttl }
`)

// RateLimit returns a middleware enforcing the given fixed-window limit per
// client IP.  With a nil Redis client, or when Redis errors, the middleware
// lets requests through: throttling protects the site, it must never take
// it down.
func RateLimit(rdb *redis.Client, limit config.RateLimit) echo.MiddlewareFunc {
	if rdb == nil || limit.Max <= 0 {
		return passthrough
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ip == "" {
				ip = "unknown"
			}
			key := limit.Prefix + ":" + ip

			ctx := c.Request().Context()
			vals, err := windowScript.Run(ctx, rdb, []string{key}, limit.Window.Milliseconds()).Int64Slice()
			if err != nil || len(vals) != 2 {
				return next(c)
			}
			count, ttlMs := vals[0], vals[1]

			remaining := int64(limit.Max) - count
			if remaining < 0 {
				remaining = 0
			}
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(limit.Max))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(limit.Max) {
				secs := int(math.Ceil(float64(ttlMs) / 1000.0))
				h.Set("Retry-After", strconv.Itoa(secs))
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"message":     "too many requests, slow down",
					"retry_after": secs,
				})
			}
			return next(c)
		}
	}
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error { return next(c) }
}
