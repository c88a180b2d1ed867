package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ariebrainware/genotator/config"
	"github.com/ariebrainware/genotator/util"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const defaultRateWindow = time.Minute

// RateLimitConfig holds configuration for rate limiting.
// A Limit of zero or less disables the limiter.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// RateLimiter counts requests per client IP in fixed windows stored in Redis.
// Without Redis every request is allowed.
func RateLimiter(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Window <= 0 {
		cfg.Window = defaultRateWindow
	}

	return func(c *gin.Context) {
		if cfg.Limit <= 0 {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		key := rateLimitKey(clientIP)

		allowed, err := checkRateLimit(c.Request.Context(), key, cfg.Limit, cfg.Window)
		if err != nil {
			// fail open
			util.LogAccessEvent(util.AccessEvent{
				EventType: util.EventCacheFailure,
				IP:        clientIP,
				Message:   fmt.Sprintf("Rate limit check failed: %v", err),
			})
			c.Next()
			return
		}

		if !allowed {
			util.LogRateLimitExceeded(clientIP, c.Request.URL.Path)
			util.RespondError(c, http.StatusTooManyRequests, util.APIErrorParams{
				Msg: "Too many requests. Please try again later.",
				Err: fmt.Errorf("rate limit exceeded"),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func rateLimitKey(clientIP string) string {
	return fmt.Sprintf("ratelimit:%s", clientIP)
}

// checkRateLimit reports whether the request identified by key is within limit.
func checkRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return true, nil
	}

	pipe := rdb.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	return incrCmd.Val() <= int64(limit), nil
}

// ResetRateLimit clears the counter for clientIP.
func ResetRateLimit(ctx context.Context, clientIP string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return fmt.Errorf("redis not available")
	}
	return rdb.Del(ctx, rateLimitKey(clientIP)).Err()
}
