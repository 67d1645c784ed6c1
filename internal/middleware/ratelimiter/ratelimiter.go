package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// UserRateLimiter keeps one token bucket per identity (IP, user, ...).
// Buckets unused for longer than expirationTime are dropped on Cleanup.
type UserRateLimiter struct {
	limiters       map[string]*limiterEntry
	mu             sync.Mutex
	rate           rate.Limit
	burst          int
	expirationTime time.Duration
	now            func() time.Time
}

// New creates a limiter allowing rps requests per second with the given burst.
func New(rps float64, burst int, expirationTime time.Duration) *UserRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &UserRateLimiter{
		limiters:       make(map[string]*limiterEntry),
		rate:           rate.Limit(rps),
		burst:          burst,
		expirationTime: expirationTime,
		now:            time.Now,
	}
}

func (url *UserRateLimiter) Allow(identity string) bool {
	url.mu.Lock()
	defer url.mu.Unlock()

	now := url.now()
	entry, ok := url.limiters[identity]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(url.rate, url.burst)}
		url.limiters[identity] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// Cleanup drops buckets idle for longer than the expiration time.
func (url *UserRateLimiter) Cleanup() {
	url.mu.Lock()
	defer url.mu.Unlock()

	cutoff := url.now().Add(-url.expirationTime)
	for id, entry := range url.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(url.limiters, id)
		}
	}
}

// StartCleanup runs Cleanup every interval until stop is closed.
func (url *UserRateLimiter) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				url.Cleanup()
			case <-stop:
				return
			}
		}
	}()
}

func (url *UserRateLimiter) size() int {
	url.mu.Lock()
	defer url.mu.Unlock()
	return len(url.limiters)
}
