package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nam-conference/backend/pkg/response"
)

// counter records one hit against a fixed window and returns the running
// count for the key. Implementations own the window bookkeeping.
type counter interface {
	hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// redisCounter backs the limiter with a Redis fixed-window key. The INCR and
// the expiry run in one MULTI/EXEC round trip, and EXPIRE NX lets any hit
// set a missing deadline, so a counter can never get stuck without an expiry.
type redisCounter struct {
	client *redis.Client
}

func (r redisCounter) hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RateLimit returns a Redis-backed fixed-window limiter keyed by client IP.
// Requests beyond limit within the window get 429. A nil client disables
// limiting entirely, and Redis errors fail open: an unreachable Redis must
// not take the survey down.
func RateLimit(client *redis.Client, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	if client == nil || limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return rateLimit(redisCounter{client: client}, limit, window, logger)
}

func rateLimit(hits counter, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:submit:%s", c.ClientIP())

		count, err := hits.hit(ctx, key, window)
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if count > int64(limit) {
			response.TooManyRequests(c, "too many submissions, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
