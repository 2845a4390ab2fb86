// Package middleware holds the gin middleware of the admin API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"airadmin/internal/infrastructure/ratelimit"
	"airadmin/internal/shared/logger"
	"airadmin/internal/shared/utils"
)

// AdminRateLimit throttles the destructive admin endpoints. The key is the
// route path so one runaway client cannot hammer resets.
func AdminRateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.FullPath(), cfg)
		if err != nil {
			// A broken limiter must not take the admin panel down.
			log.Warnw("rate limiter unavailable, allowing request", "path", c.FullPath(), "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many admin requests, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
