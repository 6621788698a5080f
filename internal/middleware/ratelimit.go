package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/classora/classora-backend/internal/response"
)

// RateLimiter is a fixed-window per-IP limiter backed by Redis, so limits
// hold across restarts and replicas. Used on the unauthenticated auth routes.
type RateLimiter struct {
	rdb    *redis.Client
	prefix string
	limit  int
	window time.Duration
}

// NewRateLimiter creates a RateLimiter (e.g., 30 requests per minute).
func NewRateLimiter(rdb *redis.Client, prefix string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{rdb: rdb, prefix: prefix, limit: limit, window: window}
}

// Middleware returns a Gin middleware that rate-limits requests by client IP.
// If Redis is unavailable the request is allowed through: availability of
// login outweighs strictness of the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", rl.prefix, c.ClientIP())
		ctx := c.Request.Context()

		// The window key is created with its TTL before counting, so a crash
		// between the two commands can never leave a counter that outlives
		// its window.
		if err := rl.rdb.SetNX(ctx, key, 0, rl.window).Err(); err != nil {
			c.Next()
			return
		}
		count, err := rl.rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}

		if count > int64(rl.limit) {
			response.AbortFail(c, http.StatusTooManyRequests, "Too many requests")
			return
		}
		c.Next()
	}
}
