package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/playspot/arena-scheduler/internal/httperr"
	"github.com/playspot/arena-scheduler/internal/ratelimit"
)

// RateLimit keys the limiter by client IP and route. The store is
// injected so the limit holds across replicas; a store failure fails
// open rather than taking the endpoint down.
func RateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.FullPath()

		res, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("rate limit store unavailable")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))

		if !res.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())))
			httperr.TooManyRequests(c, "rate_limited", "Too many requests. Try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
