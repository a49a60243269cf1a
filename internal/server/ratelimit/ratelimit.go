// Package ratelimit provides per-client rate limiting for the match API
// using the token bucket algorithm.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// bucketIdleTTL is how long a bucket may go unused before cleanup
// removes it.
const bucketIdleTTL = time.Hour

// tokenBucket allows a number of requests per window, refilling at a
// steady rate.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (tb *tokenBucket) refill(now time.Time) {
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now
}

// take consumes one token if available, returning whether the request is
// allowed plus the remaining tokens and the time the bucket refills.
func (tb *tokenBucket) take() (allowed bool, remaining int, reset time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.refill(now)

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		allowed = true
	}

	remaining = int(tb.tokens)
	reset = now
	if tb.tokens < float64(tb.capacity) {
		secondsUntilFull := (float64(tb.capacity) - tb.tokens) / tb.refillRate
		reset = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return allowed, remaining, reset
}

// Rule is the rate limit applied to one endpoint. Limit <= 0 means
// unlimited.
type Rule struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled       bool
	DefaultLimit  int
	DefaultWindow time.Duration
	// CleanupInterval is how often idle buckets are evicted; <= 0
	// disables the cleanup goroutine.
	CleanupInterval time.Duration
	Rules           []Rule
}

// LoadConfig loads rate limiting configuration from environment variables,
// with per-endpoint rules tuned for the match API: scoring requests are
// limited harder than catalog reads, and the health check is unlimited.
func LoadConfig() *Config {
	enabled := true
	if value := os.Getenv("RATE_LIMIT_ENABLED"); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			enabled = parsed
		}
	}

	defaultLimit := 1000
	if value := os.Getenv("RATE_LIMIT_DEFAULT_LIMIT"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			defaultLimit = parsed
		}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    defaultLimit,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Rules: []Rule{
			{Path: "/match", Method: "POST", Limit: 120, Window: time.Minute},
			{Path: "/careers", Method: "GET", Limit: 600, Window: time.Minute},
			{Path: "/health", Method: "GET", Limit: 0},
		},
	}
}

// Info reports rate limit status for response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages per-client token buckets. Buckets are keyed per client
// and endpoint, so the map grows with distinct clients; a cleanup
// goroutine evicts buckets idle longer than bucketIdleTTL.
type Limiter struct {
	config        *Config
	buckets       map[string]*tokenBucket
	lastAccess    map[string]time.Time
	mu            sync.Mutex
	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a rate limiter with the given configuration and
// starts its cleanup goroutine when enabled. Callers must Stop the
// limiter when done with it.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = LoadConfig()
	}

	limiter := &Limiter{
		config:     config,
		buckets:    make(map[string]*tokenBucket),
		lastAccess: make(map[string]time.Time),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		limiter.cleanupTicker = time.NewTicker(config.CleanupInterval)
		limiter.cleanupStop = make(chan struct{})
		go limiter.cleanup()
	}

	return limiter
}

// Allow checks whether a request from clientID against the given endpoint
// is allowed, consuming a token if so.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	limit := l.config.DefaultLimit
	window := l.config.DefaultWindow
	for _, rule := range l.config.Rules {
		if rule.Path == path && rule.Method == method {
			if rule.Limit <= 0 {
				return true, Info{Allowed: true}
			}
			limit = rule.Limit
			window = rule.Window
			break
		}
	}

	bucket := l.getBucket(clientID+":"+method+" "+path, limit, window)
	allowed, remaining, reset := bucket.take()

	info := Info{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		if retryAfter := time.Until(reset); retryAfter > 0 {
			info.RetryAfter = retryAfter
		}
	}
	return allowed, info
}

func (l *Limiter) getBucket(key string, limit int, window time.Duration) *tokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastAccess[key] = time.Now()

	bucket, exists := l.buckets[key]
	if !exists {
		bucket = newTokenBucket(limit, float64(limit)/window.Seconds())
		l.buckets[key] = bucket
	}
	return bucket
}

// cleanup evicts idle buckets on every tick until Stop is called.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.evictIdle(time.Now().Add(-bucketIdleTTL))
		case <-l.cleanupStop:
			return
		}
	}
}

// evictIdle removes every bucket whose last access is before cutoff.
func (l *Limiter) evictIdle(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
		}
	}
}

// Stop stops the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
		l.cleanupStop = nil
	}
}
