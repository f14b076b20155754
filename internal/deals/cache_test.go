package deals

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/Krisna-19/dealcompare/internal/models"
	"github.com/Krisna-19/dealcompare/internal/obs"
	"github.com/prometheus/client_golang/prometheus"
)

func newTestCache(ttl time.Duration) *Cache {
	return NewCache(ttl, obs.NewMetrics(prometheus.NewRegistry()))
}

func TestCacheHitReturnsStoredPayload(t *testing.T) {
	cache := newTestCache(time.Minute)
	calls := 0
	fn := func(ctx context.Context) (models.SearchResponse, error) {
		calls++
		return models.SearchResponse{Message: "Found 1 best deals", Results: []models.DealResult{{ProductName: "X"}}}, nil
	}

	ctx := context.Background()
	first, err := cache.GetOrCompute(ctx, "tshirt", fn)
	if err != nil {
		t.Fatal(err)
	}
	second, err := cache.GetOrCompute(ctx, "tshirt", fn)
	if err != nil {
		t.Fatal(err)
	}

	if calls != 1 {
		t.Fatalf("expected a single compute within TTL, got %d", calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("cache hit must return the stored payload unchanged")
	}
}

func TestCacheExpiryRecomputes(t *testing.T) {
	cache := newTestCache(10 * time.Millisecond)
	calls := 0
	fn := func(ctx context.Context) (models.SearchResponse, error) {
		calls++
		return models.SearchResponse{}, nil
	}

	ctx := context.Background()
	if _, err := cache.GetOrCompute(ctx, "k", fn); err != nil {
		t.Fatal(err)
	}
	time.Sleep(25 * time.Millisecond)
	if _, err := cache.GetOrCompute(ctx, "k", fn); err != nil {
		t.Fatal(err)
	}

	if calls != 2 {
		t.Fatalf("expected recompute after TTL expiry, got %d calls", calls)
	}
}

func TestCacheKeysAreIndependent(t *testing.T) {
	cache := newTestCache(time.Minute)
	calls := 0
	fn := func(ctx context.Context) (models.SearchResponse, error) {
		calls++
		return models.SearchResponse{}, nil
	}

	ctx := context.Background()
	cache.GetOrCompute(ctx, "tshirt", fn)
	cache.GetOrCompute(ctx, "mobile", fn)
	if calls != 2 {
		t.Fatalf("distinct keys must compute separately, got %d calls", calls)
	}
}

func TestCacheCollapsesConcurrentMisses(t *testing.T) {
	cache := newTestCache(2 * time.Second)
	var mu sync.Mutex
	calls := 0
	fn := func(ctx context.Context) (models.SearchResponse, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		time.Sleep(50 * time.Millisecond)
		return models.SearchResponse{}, nil
	}

	ctx := context.Background()
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		go func() {
			cache.GetOrCompute(ctx, "k", fn)
			done <- struct{}{}
		}()
	}
	for i := 0; i < 5; i++ {
		<-done
	}
	if calls != 1 {
		t.Fatalf("expected single compute got %d", calls)
	}
}
