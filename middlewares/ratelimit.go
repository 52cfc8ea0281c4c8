package middlewares

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiterConfig holds the configuration for the rate limiter
type RateLimiterConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// NewRateLimiterMiddleware limits all requests through one shared bucket
func NewRateLimiterMiddleware(config RateLimiterConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			tooManyRequests(c, limiter)
			return
		}
		c.Next()
	}
}

// clientLimiters keeps one bucket per client IP.
type clientLimiters struct {
	config   RateLimiterConfig
	idleTTL  time.Duration
	maxSize  int
	mu       sync.RWMutex
	limiters map[string]*clientLimiter
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiters(config RateLimiterConfig) *clientLimiters {
	return &clientLimiters{
		config:   config,
		idleTTL:  10 * time.Minute,
		maxSize:  10000,
		limiters: make(map[string]*clientLimiter),
	}
}

func (s *clientLimiters) get(key string, now time.Time) *rate.Limiter {
	s.mu.RLock()
	entry, ok := s.limiters[key]
	s.mu.RUnlock()
	if ok {
		s.mu.Lock()
		entry.lastSeen = now
		s.mu.Unlock()
		return entry.limiter
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another request may have created it while we waited for the lock
	if entry, ok := s.limiters[key]; ok {
		entry.lastSeen = now
		return entry.limiter
	}
	if len(s.limiters) >= s.maxSize {
		s.prune(now)
	}
	entry = &clientLimiter{
		limiter:  rate.NewLimiter(rate.Limit(s.config.RequestsPerSecond), s.config.Burst),
		lastSeen: now,
	}
	s.limiters[key] = entry
	return entry.limiter
}

// prune drops buckets that have been idle for longer than idleTTL. Callers hold the write lock.
func (s *clientLimiters) prune(now time.Time) {
	for key, entry := range s.limiters {
		if now.Sub(entry.lastSeen) > s.idleTTL {
			delete(s.limiters, key)
		}
	}
}

// NewClientRateLimiterMiddleware limits each client IP separately. It guards the login and
// registration endpoints against password guessing.
func NewClientRateLimiterMiddleware(config RateLimiterConfig) gin.HandlerFunc {
	store := newClientLimiters(config)

	return func(c *gin.Context) {
		limiter := store.get(c.ClientIP(), time.Now())
		if !limiter.Allow() {
			tooManyRequests(c, limiter)
			return
		}
		c.Next()
	}
}

func tooManyRequests(c *gin.Context, limiter *rate.Limiter) {
	retryAfter := 1
	if limit := limiter.Limit(); limit > 0 {
		retryAfter = int(1/float64(limit)) + 1
	}
	c.Header("Retry-After", strconv.Itoa(retryAfter))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error": "rate limit exceeded",
	})
}
