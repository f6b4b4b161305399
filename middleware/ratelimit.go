package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type bucket struct {
	count       int
	windowStart time.Time
}

// RateLimiter is a fixed-window counter keyed by a caller-supplied string.
// State is process-local and advisory: with multiple instances each process
// counts independently, so this is a soft throttle, not a security boundary.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow reports whether the caller identified by key is within limit for the
// current window. The window is fixed: it starts at the first call and resets
// entirely once it elapses.
func (rl *RateLimiter) Allow(key string, limit int, window time.Duration) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	b, exists := rl.buckets[key]
	if !exists || now.Sub(b.windowStart) >= window {
		rl.buckets[key] = &bucket{count: 1, windowStart: now}
		return true
	}

	if b.count >= limit {
		return false
	}

	b.count++
	return true
}

// Cleanup drops buckets whose window started more than maxAge ago.
func (rl *RateLimiter) Cleanup(maxAge time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.windowStart) > maxAge {
			delete(rl.buckets, key)
		}
	}
}

// RateLimitByIP throttles by client IP. name namespaces the key so different
// endpoints sharing one limiter do not share counters.
func RateLimitByIP(rl *RateLimiter, name string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(name+":"+c.ClientIP(), limit, window) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitByUser throttles by the authenticated user id; must run after
// JWTAuthMiddleware.
func RateLimitByUser(rl *RateLimiter, name string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString("userId")
		if key == "" {
			key = c.ClientIP()
		}
		if !rl.Allow(name+":"+key, limit, window) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			c.Abort()
			return
		}
		c.Next()
	}
}
