package middleware

import (
    "fmt"
    "math"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/eventzone/eventzone-web/internal/config"
)

// AuthRateLimit applies a Redis token bucket keyed by client IP and route.
// It wraps only the login and registration endpoints: those are the two
// places an anonymous caller can make the gateway hit the backend with
// attacker-chosen credentials.  Without Redis the limiter is a no-op.
func AuthRateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }

    limiterScript := redis.NewScript(`
        local key = KEYS[1]
        local now_ms = tonumber(ARGV[1])
        local capacity = tonumber(ARGV[2])
        local refill_tokens = tonumber(ARGV[3])
        local interval_ms = tonumber(ARGV[4])
        local ttl_seconds = tonumber(ARGV[5])

        local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
        local tokens = tonumber(state[1])
        local last_refill = tonumber(state[2])

        if tokens == nil or last_refill == nil then
            tokens = capacity
            last_refill = now_ms
        end

        if interval_ms > 0 and refill_tokens > 0 then
            local elapsed = math.max(0, now_ms - last_refill)
            local intervals = math.floor(elapsed / interval_ms)
            if intervals > 0 then
                tokens = math.min(capacity, tokens + (intervals * refill_tokens))
                last_refill = last_refill + (intervals * interval_ms)
            end
        end

        local allowed = 0
        local retry_after_ms = 0
        if tokens > 0 then
            allowed = 1
            tokens = tokens - 1
        else
            local until_next = interval_ms - (now_ms - last_refill)
            if until_next < 0 then until_next = 0 end
            retry_after_ms = until_next
        end

        redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
        redis.call('EXPIRE', key, ttl_seconds)
        return {allowed, tokens, retry_after_ms}
    `)

    intervalMS := cfg.RefillInterval.Milliseconds()
    ttlSec := int64(math.Ceil(cfg.TTL.Seconds()))

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            key := fmt.Sprintf("%s:%s:%s", cfg.Prefix, c.RealIP(), c.Path())
            now := time.Now().UnixMilli()

            res, err := limiterScript.Run(c.Request().Context(), rdb, []string{key},
                now, cfg.Capacity, cfg.RefillTokens, intervalMS, ttlSec).Int64Slice()
            if err != nil || len(res) < 3 {
                // Limiter trouble never blocks a login attempt.
                return next(c)
            }
            if res[0] != 1 {
                retryAfter := time.Duration(res[2]) * time.Millisecond
                c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(math.Ceil(retryAfter.Seconds())), 10))
                return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "demasiados intentos, espera un momento"})
            }
            return next(c)
        }
    }
}
