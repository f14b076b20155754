package deals

import (
	"context"
	"sync"
	"time"

	"github.com/Krisna-19/dealcompare/internal/models"
	"github.com/Krisna-19/dealcompare/internal/obs"
)

type cacheEntry struct {
	val       models.SearchResponse
	createdAt time.Time
	ready     bool
	waiters   []chan cacheResult
}

type cacheResult struct {
	res models.SearchResponse
	err error
}

// Cache memoizes aggregation results per query key for a bounded window.
// The check-TTL/read/write sequence is a single critical section, and
// concurrent misses for one key collapse onto a single computation.
// Expired entries are never evicted; the next miss overwrites them.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	items   map[string]*cacheEntry
	metrics *obs.Metrics
}

func NewCache(ttl time.Duration, m *obs.Metrics) *Cache {
	return &Cache{ttl: ttl, items: make(map[string]*cacheEntry), metrics: m}
}

// GetOrCompute returns the cached payload unchanged when the entry is
// younger than the TTL, otherwise runs fn once and stores its result.
func (c *Cache) GetOrCompute(ctx context.Context, key string, fn ComputeFunc) (models.SearchResponse, error) {
	c.mu.Lock()
	entry, found := c.items[key]
	now := time.Now()

	if found && entry.ready && now.Sub(entry.createdAt) < c.ttl {
		val := entry.val
		c.mu.Unlock()
		if c.metrics != nil {
			c.metrics.IncCacheHits()
		}
		return val, nil
	}

	// Computation already in flight for this key: join its waiters.
	if found && !entry.ready {
		ch := make(chan cacheResult, 1)
		entry.waiters = append(entry.waiters, ch)
		c.mu.Unlock()
		select {
		case <-ctx.Done():
			return models.SearchResponse{}, ctx.Err()
		case r := <-ch:
			return r.res, r.err
		}
	}

	ch := make(chan cacheResult, 1)
	entry = &cacheEntry{waiters: []chan cacheResult{ch}}
	c.items[key] = entry
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.IncCacheMisses()
	}

	// Only this goroutine computes; everyone else is parked on a waiter.
	res, err := fn(ctx)

	c.mu.Lock()
	entry.val = res
	entry.createdAt = time.Now()
	entry.ready = true
	waiters := entry.waiters
	entry.waiters = nil
	c.mu.Unlock()

	result := cacheResult{res: res, err: err}
	for _, w := range waiters {
		w <- result
		close(w)
	}

	return res, err
}
