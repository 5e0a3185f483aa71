package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"conversational-assistant/pkg/response"
)

// clientLimiter keeps one token bucket per client IP with auto-cleanup.
type clientLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newClientLimiter(requestsPerMin int) *clientLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &clientLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (cl *clientLimiter) allow(key string) bool {
	limiter, ok := cl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(cl.rate, cl.burst)
		cl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles requests per client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
