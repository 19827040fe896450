package middleware

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cora/internal/ratelimit"
)

// IdentityHeader carries the caller's API identity when present. Requests
// without it are keyed by client IP instead.
const IdentityHeader = "X-API-Key"

type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
}

func NewRateLimitMiddleware(limiter *ratelimit.Limiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

func (m *RateLimitMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		class := m.limiter.ClassFor(c.Request.URL.Path)

		identity := strings.TrimSpace(c.GetHeader(IdentityHeader))

		if identity == "" {
			identity = m.clientIP(c)
		}

		if identity == "" {
			c.JSON(500, gin.H{
				"status":  500,
				"message": "Failed to determine client IP",
			})
			c.Abort()
			return
		}

		key := ratelimit.Key(class, identity)
		allowed := m.limiter.IsAllowed(ctx, class, key)
		reset := m.limiter.ResetTime(ctx, class, key)

		c.Header("X-RateLimit-Limit", fmt.Sprint(class.MaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprint(m.limiter.Remaining(ctx, class, key)))
		c.Header("X-RateLimit-Reset", fmt.Sprint(reset.Unix()))

		if !allowed {
			retryAfter := int(time.Until(reset).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}

			c.Header("Retry-After", fmt.Sprint(retryAfter))
			c.JSON(429, gin.H{
				"error":       "Rate limit exceeded",
				"message":     fmt.Sprintf("Too many requests. Try again in %d seconds.", retryAfter),
				"retry_after": retryAfter,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// clientIP prefers the first X-Forwarded-For entry, then X-Real-IP, then the
// raw connection address.
func (m *RateLimitMiddleware) clientIP(c *gin.Context) string {
	forwardedFor := strings.TrimSpace(c.GetHeader("X-Forwarded-For"))

	if forwardedFor != "" {
		return strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	}

	realIP := strings.TrimSpace(c.GetHeader("X-Real-IP"))

	if realIP != "" {
		return realIP
	}

	ip, _, err := net.SplitHostPort(strings.TrimSpace(c.Request.RemoteAddr))

	if err != nil {
		return strings.TrimSpace(c.Request.RemoteAddr)
	}

	return ip
}
