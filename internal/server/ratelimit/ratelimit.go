// Package ratelimit provides token bucket rate limiting for the HTTP API.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// bucket is a token bucket refilled at a steady rate.
type bucket struct {
	mu         sync.Mutex
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func newBucket(capacity int, refillRate float64) *bucket {
	return &bucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// take refills the bucket for the elapsed time, then consumes one token if
// one is available.
func (b *bucket) take() (allowed bool, remaining int, resetTime time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(float64(b.capacity), b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens--
		allowed = true
	}

	resetTime = now
	if b.tokens < float64(b.capacity) {
		secondsUntilFull := (float64(b.capacity) - b.tokens) / b.refillRate
		resetTime = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return allowed, int(b.tokens), resetTime
}

// Info reports rate limit state for response headers.
type Info struct {
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter tracks one token bucket per client and endpoint tier.
type Limiter struct {
	mu         sync.Mutex
	config     *Config
	buckets    map[string]*bucket
	lastAccess map[string]time.Time
	stop       chan struct{}
}

// NewLimiter creates a limiter and starts the idle-bucket cleanup goroutine
// when rate limiting is enabled.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = defaultConfig()
	}

	l := &Limiter{
		config:     config,
		buckets:    make(map[string]*bucket),
		lastAccess: make(map[string]time.Time),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.stop = make(chan struct{})
		go l.cleanupLoop(config.CleanupInterval)
	}
	return l
}

// Allow reports whether a request from clientID to the endpoint may proceed.
// Info carries the values for the X-RateLimit-* headers; a zero Limit means
// the endpoint is unlimited.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{}
	}

	tier := l.match(path, method)
	if tier == nil || tier.Limit <= 0 {
		return true, Info{}
	}

	key := clientID + ":" + tier.Path + ":" + method
	b := l.getBucket(key, tier)

	allowed, remaining, resetTime := b.take()
	info := Info{Limit: tier.Limit, Remaining: remaining, ResetTime: resetTime}
	if !allowed {
		info.RetryAfter = max(time.Until(resetTime), 0)
	}
	return allowed, info
}

// match finds the endpoint tier for a request. Read endpoints (index, health)
// are never limited; unmatched writes fall back to the default tier.
func (l *Limiter) match(path, method string) *EndpointConfig {
	if method == "GET" {
		return nil
	}
	for i := range l.config.Endpoints {
		tier := &l.config.Endpoints[i]
		if tier.Method != method {
			continue
		}
		if tier.Path == path || (strings.HasSuffix(tier.Path, "/") && strings.HasPrefix(path, tier.Path)) {
			return tier
		}
	}
	return &EndpointConfig{
		Path:   "*",
		Limit:  l.config.DefaultLimit,
		Window: l.config.DefaultWindow,
		Burst:  l.config.DefaultLimit,
	}
}

func (l *Limiter) getBucket(key string, tier *EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastAccess[key] = time.Now()
	if b, ok := l.buckets[key]; ok {
		return b
	}

	capacity := tier.Burst
	if capacity <= 0 {
		capacity = tier.Limit
	}
	b := newBucket(capacity, float64(tier.Limit)/tier.Window.Seconds())
	l.buckets[key] = b
	return b
}

// cleanupLoop drops buckets idle for over an hour.
func (l *Limiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-time.Hour)
			l.mu.Lock()
			for key, last := range l.lastAccess {
				if last.Before(cutoff) {
					delete(l.buckets, key)
					delete(l.lastAccess, key)
				}
			}
			l.mu.Unlock()
		case <-l.stop:
			return
		}
	}
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.stop != nil {
		close(l.stop)
	}
}
