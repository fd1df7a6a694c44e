package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"yordam/internal/infrastructure/ratelimit"
	"yordam/internal/shared/logger"
	"yordam/internal/shared/utils"
)

type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// PerIP throttles by client address. Used on unauthenticated endpoints
// where there is no account to key on.
func (m *RateLimitMiddleware) PerIP(name string, config ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:ip:%s", name, c.ClientIP())
		m.check(c, key, config)
	}
}

// PerUser throttles by authenticated account. Must run after
// RequireAuth.
func (m *RateLimitMiddleware) PerUser(name string, config ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:user:%d", name, UserIDFrom(c))
		m.check(c, key, config)
	}
}

func (m *RateLimitMiddleware) check(c *gin.Context, key string, config ratelimit.RateLimitConfig) {
	allowed, err := m.limiter.Allow(key, config)
	if err != nil {
		// A limiter outage must not take the service down with it.
		m.logger.Errorw("rate limiter unavailable", "error", err, "key", key)
		c.Next()
		return
	}

	if !allowed {
		m.logger.Warnw("rate limit exceeded", "key", key)
		utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
		c.Abort()
		return
	}

	c.Next()
}
