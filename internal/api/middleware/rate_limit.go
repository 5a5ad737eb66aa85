package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/6394981696/Lecture-Scheduling/pkg/redis"
)

// RateLimit throttles a route per client IP using a Redis fixed
// window. Applied to the credential endpoints. Degrades to a no-op
// when Redis is unavailable, same policy as the session store.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			// fail open on Redis errors
			c.Next()
			return
		}

		if !allowed {
			c.String(http.StatusTooManyRequests, "Too many attempts. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
