package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripcraft/pkg/memcache"
	"tripcraft/pkg/utils"
)

// RateLimitMiddleware caps anonymous generation requests per client IP.
// Authenticated callers are governed by their subscription tier instead.
func RateLimitMiddleware(store memcache.RateCounterStore, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("account_id") != "" {
			c.Next()
			return
		}

		count := store.IncrementWithExpiry("ip:"+c.ClientIP(), window)
		if count > limit {
			utils.RespondError(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
