package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const rateLimitSweepInterval = 5 * time.Minute

// rateLimiter tracks request timestamps per client IP over a sliding window
type rateLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	limit   int
	clients map[string][]time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		window:  window,
		limit:   limit,
		clients: make(map[string][]time.Time),
	}
}

// allow records a request for ip and reports whether it is within the limit
func (rl *rateLimiter) allow(ip string, now time.Time) bool {
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	recent := rl.clients[ip][:0]
	for _, t := range rl.clients[ip] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) >= rl.limit {
		rl.clients[ip] = recent
		return false
	}
	rl.clients[ip] = append(recent, now)
	return true
}

// sweep drops IPs whose entries all fell out of the window, so clients that
// stopped sending do not leave map entries behind
func (rl *rateLimiter) sweep(now time.Time) {
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, times := range rl.clients {
		stale := true
		for _, t := range times {
			if t.After(cutoff) {
				stale = false
				break
			}
		}
		if stale {
			delete(rl.clients, ip)
		}
	}
}

// RateLimit caps requests per client IP to perMinute over a sliding one-minute
// window, with a periodic sweep expiring IPs that stopped sending. State is
// in-memory: a multi-instance deployment rate limits per instance, which is
// acceptable for the auth and ingest routes this guards.
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	rl := newRateLimiter(perMinute, time.Minute)
	go func() {
		ticker := time.NewTicker(rateLimitSweepInterval)
		defer ticker.Stop()
		for now := range ticker.C {
			rl.sweep(now)
		}
	}()

	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP(), time.Now()) {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		c.Next()
	}
}
