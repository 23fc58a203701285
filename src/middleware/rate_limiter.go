package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// windowEntry counts requests from one client within the current window
type windowEntry struct {
	count       int
	windowStart time.Time
}

// RateLimiter enforces a fixed-window request cap per client key. The table
// is in-memory and process-wide only: deployments running several instances
// get no cross-instance guarantee, which is an accepted property of this
// limiter, not a bug.
type RateLimiter struct {
	entries map[string]*windowEntry
	mu      sync.Mutex
	window  time.Duration
	limit   int
	now     func() time.Time
	stopCh  chan struct{}
}

// RateLimitConfig defines configuration for the rate limiting middleware
type RateLimitConfig struct {
	Window      time.Duration
	MaxRequests int
}

// NewRateLimiter creates a rate limiter and starts its stale-entry cleanup
// goroutine. Call Stop to terminate it.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = 50
	}

	rl := &RateLimiter{
		entries: make(map[string]*windowEntry),
		window:  cfg.Window,
		limit:   cfg.MaxRequests,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// newRateLimiterWithClock creates a limiter with an injected clock and no
// cleanup goroutine (for tests).
func newRateLimiterWithClock(cfg RateLimitConfig, now func() time.Time) *RateLimiter {
	return &RateLimiter{
		entries: make(map[string]*windowEntry),
		window:  cfg.Window,
		limit:   cfg.MaxRequests,
		now:     now,
		stopCh:  make(chan struct{}),
	}
}

// Allow records a request from key and reports whether it is within the cap.
// A fresh or rolled-over window resets the counter to 1.
func (rl *RateLimiter) Allow(key string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.entries[key]
	if !ok || now.Sub(entry.windowStart) > rl.window {
		rl.entries[key] = &windowEntry{count: 1, windowStart: now}
		return true
	}

	if entry.count < rl.limit {
		entry.count++
		return true
	}

	return false
}

// cleanupLoop drops entries whose window ended long ago
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-2 * rl.window)
	for key, entry := range rl.entries {
		if entry.windowStart.Before(cutoff) {
			delete(rl.entries, key)
		}
	}
}

// Stop terminates the cleanup goroutine
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// Middleware returns a Gin middleware enforcing the limit per client IP.
// ClientIP honors forwarded headers and falls back to the connection address.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
