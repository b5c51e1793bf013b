// Package middleware file: middleware/login_rate_limit.go
package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go-event-portal/logger"
	"golang.org/x/time/rate"
)

// maxTrackedIPs bounds the limiter map; past it the map is reset.
const maxTrackedIPs = 10000

// LoginLimiter throttles credential submissions per client IP.
type LoginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

// NewLoginLimiter allows rps submissions per second per IP with the given burst.
func NewLoginLimiter(rps float64, burst int) *LoginLimiter {
	if rps <= 0 {
		rps = 0.5
	}
	if burst <= 0 {
		burst = 5
	}
	return &LoginLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

// Allow reports whether ip may submit now.
func (l *LoginLimiter) Allow(ip string) bool {
	l.mu.Lock()
	limiter, exists := l.limiters[ip]
	if !exists {
		if len(l.limiters) >= maxTrackedIPs {
			l.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters[ip] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow()
}

// Middleware rejects throttled requests with 429.
func (l *LoginLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !l.Allow(ip) {
			logger.Warn.Printf("LoginLimiter: throttled %s %s from %s", c.Request.Method, c.Request.URL.Path, ip)
			c.String(http.StatusTooManyRequests, "Too many attempts. Please wait a moment and try again.")
			c.Abort()
			return
		}
		c.Next()
	}
}
