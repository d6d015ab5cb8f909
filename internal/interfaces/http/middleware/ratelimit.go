package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexorbs/nexportal/internal/infrastructure/ratelimit"
	"github.com/nexorbs/nexportal/internal/shared/logger"
	"github.com/nexorbs/nexportal/internal/shared/utils"
)

type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.Limiter, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, logger: logger}
}

// Limit throttles per client IP. When the limiter backend is unreachable
// the request goes through; auth must not depend on redis being up.
func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := m.limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			m.logger.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
