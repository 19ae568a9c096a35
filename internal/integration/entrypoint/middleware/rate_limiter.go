// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/coinbag/backend/internal/domain/error"
	"github.com/coinbag/backend/internal/integration/entrypoint/dto"
)

const (
	defaultMaxAttempts    = 5
	defaultWindowDuration = 1 * time.Minute
)

type rateWindow struct {
	attempts int
	resetAt  time.Time
}

// RateLimiter caps requests per client IP over a fixed window. State lives
// in process; a restart clears it.
type RateLimiter struct {
	mu             sync.Mutex
	windows        map[string]*rateWindow
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a rate limiter with the default window (5/min).
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a rate limiter with custom settings.
func NewRateLimiterWithConfig(maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		windows:        make(map[string]*rateWindow),
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware enforces the limit per client IP. Skipped entirely under the
// test environment so scenario suites can hammer the login endpoint.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	window, exists := rl.windows[key]
	if !exists || now.After(window.resetAt) {
		rl.windows[key] = &rateWindow{
			attempts: 1,
			resetAt:  now.Add(rl.windowDuration),
		}
		return true
	}

	if window.attempts < rl.maxAttempts {
		window.attempts++
		return true
	}

	return false
}

// Reset drops all tracked windows.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.windows = make(map[string]*rateWindow)
}

// Cleanup removes expired windows so long-lived processes do not accumulate
// one entry per IP ever seen.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, window := range rl.windows {
		if now.After(window.resetAt) {
			delete(rl.windows, key)
		}
	}
}
