package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pim/backend/internal/interfaces/http/dto"
	"golang.org/x/time/rate"
)

// RateLimiter keeps a token bucket per client key and evicts buckets
// that have been idle for a while
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*client
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	lastSeen map[string]time.Time
	done     chan struct{}
}

type client struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a rate limiter allowing limit requests per
// second with the given burst
func NewRateLimiter(limit float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients:  make(map[string]*client),
		lastSeen: make(map[string]time.Time),
		limit:    rate.Limit(limit),
		burst:    burst,
		idleTTL:  3 * time.Minute,
		done:     make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// Stop terminates the background eviction goroutine
func (rl *RateLimiter) Stop() {
	close(rl.done)
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := time.Now()
			for key, seen := range rl.lastSeen {
				if now.Sub(seen) > rl.idleTTL {
					delete(rl.clients, key)
					delete(rl.lastSeen, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Allow reports whether a request from the given key may proceed
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	c, exists := rl.clients[key]
	if !exists {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	rl.lastSeen[key] = time.Now()
	rl.mu.Unlock()

	return c.limiter.Allow()
}

// Tokens returns the number of tokens currently available for the key
func (rl *RateLimiter) Tokens(key string) int {
	rl.mu.Lock()
	c, exists := rl.clients[key]
	rl.mu.Unlock()

	if !exists {
		return rl.burst
	}
	tokens := int(c.limiter.Tokens())
	if tokens < 0 {
		return 0
	}
	return tokens
}

// RateLimit returns a rate limiting middleware keyed by client IP
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if !limiter.Allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				dto.ErrCodeRateLimited,
				"Too many requests. Please try again later.",
			))
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Tokens(key)))

		c.Next()
	}
}
