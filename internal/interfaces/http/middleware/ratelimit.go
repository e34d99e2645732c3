package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"aster/internal/infrastructure/ratelimit"
	"aster/internal/shared/logger"
	"aster/internal/shared/utils"
)

// RateLimit throttles a route group per authenticated user, falling back to
// the client IP for anonymous callers. A failing limiter backend lets the
// request through rather than blocking all traffic.
func RateLimit(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ip:%s", c.ClientIP())
		if userID := UserID(c); userID != 0 {
			key = fmt.Sprintf("user:%d", userID)
		}

		allowed, err := limiter.Allow(c.Request.Context(), key, config)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "key", key, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
