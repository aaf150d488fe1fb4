package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"household-relay/pkg/response"
)

// DeviceIDHeader identifies the speaking device; clients without it are
// keyed by IP.
const DeviceIDHeader = "X-Device-ID"

// RateLimit throttles voice endpoints per device. Limiters live in an
// expiring cache, so idle devices cost nothing.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.config.Enabled {
			c.Next()
			return
		}

		key := c.GetHeader(DeviceIDHeader)
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(m.config.PerMinute)/60.0), m.config.Burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
