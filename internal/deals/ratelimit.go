package deals

import (
	"sync"
	"time"
)

// Per-IP token bucket. Buckets refill to capacity once the refill interval
// has passed; there is no partial refill.
type bucket struct {
	tokens     int
	lastRefill time.Time
}

type IPRateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	cap     int
	refill  time.Duration
}

func NewIPRateLimiter(cap int, refill time.Duration) *IPRateLimiter {
	return &IPRateLimiter{buckets: make(map[string]*bucket), cap: cap, refill: refill}
}

func (rl *IPRateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.buckets[ip]
	if !ok {
		rl.buckets[ip] = &bucket{tokens: rl.cap - 1, lastRefill: now}
		return true
	}
	if now.Sub(b.lastRefill) >= rl.refill {
		b.tokens = rl.cap
		b.lastRefill = now
	}
	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}
