package deals_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Krisna-19/dealcompare/internal/deals"
	"github.com/Krisna-19/dealcompare/internal/models"
	"github.com/Krisna-19/dealcompare/internal/obs"
	"github.com/prometheus/client_golang/prometheus"
)

type mockAggregator struct {
	mu      sync.Mutex
	counter int
	fn      func(ctx context.Context, query string) (models.SearchResponse, error)
}

func (m *mockAggregator) Aggregate(ctx context.Context, query string) (models.SearchResponse, error) {
	m.mu.Lock()
	m.counter++
	m.mu.Unlock()
	if m.fn != nil {
		return m.fn(ctx, query)
	}
	return models.SearchResponse{Message: "Found 0 best deals", Results: []models.DealResult{}}, nil
}

func (m *mockAggregator) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counter
}

func newTestService(agg deals.AggregatorService, ttl time.Duration, catalog []models.RawOffer) *deals.Service {
	cache := deals.NewCache(ttl, obs.NewMetrics(prometheus.NewRegistry()))
	return deals.NewService(agg, cache, catalog, nil, nil)
}

func TestService_Search_NoQuery(t *testing.T) {
	svc := newTestService(&mockAggregator{}, time.Minute, nil)
	for _, q := range []string{"", "   "} {
		res := svc.Search(context.Background(), q)
		if res.Message != "No query" {
			t.Errorf("Search(%q) message = %q, want \"No query\"", q, res.Message)
		}
		if len(res.Results) != 0 {
			t.Errorf("Search(%q) returned %d results, want 0", q, len(res.Results))
		}
	}
}

func TestService_Search_CacheHitSkipsPipeline(t *testing.T) {
	agg := &mockAggregator{
		fn: func(ctx context.Context, query string) (models.SearchResponse, error) {
			return models.SearchResponse{
				Message: "Found 1 best deals",
				Results: []models.DealResult{{ProductName: "X"}},
			}, nil
		},
	}
	svc := newTestService(agg, time.Minute, nil)

	first := svc.Search(context.Background(), "Tshirt")
	// lowercased-and-trimmed query is the cache key
	second := svc.Search(context.Background(), "  TSHIRT ")

	if agg.calls() != 1 {
		t.Fatalf("expected one pipeline run, got %d", agg.calls())
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("cache hit must return the identical payload")
	}
}

func TestService_Search_TTLExpiryRecomputes(t *testing.T) {
	agg := &mockAggregator{}
	svc := newTestService(agg, 10*time.Millisecond, nil)

	svc.Search(context.Background(), "tshirt")
	time.Sleep(25 * time.Millisecond)
	svc.Search(context.Background(), "tshirt")

	if agg.calls() != 2 {
		t.Fatalf("expected pipeline re-run after TTL, got %d calls", agg.calls())
	}
}

func TestService_Search_AggregatorErrorBecomesStructuredResponse(t *testing.T) {
	agg := &mockAggregator{
		fn: func(ctx context.Context, query string) (models.SearchResponse, error) {
			return models.SearchResponse{}, errors.New("everything is on fire")
		},
	}
	svc := newTestService(agg, time.Minute, nil)

	res := svc.Search(context.Background(), "tshirt")
	if res.Message == "" || len(res.Results) != 0 {
		t.Fatalf("failure must surface as a structured message response, got %+v", res)
	}
	if strings.Contains(res.Message, "fire") {
		t.Fatal("diagnostic detail must not leak into the response")
	}
}

func TestService_Search_PanicRecovered(t *testing.T) {
	agg := &mockAggregator{
		fn: func(ctx context.Context, query string) (models.SearchResponse, error) {
			panic("unexpected")
		},
	}
	svc := newTestService(agg, time.Minute, nil)

	res := svc.Search(context.Background(), "tshirt")
	if res.Message == "" || len(res.Results) != 0 {
		t.Fatalf("panic must surface as a structured message response, got %+v", res)
	}
}

func TestService_Search_AffiliateLink(t *testing.T) {
	cache := deals.NewCache(time.Minute, obs.NewMetrics(prometheus.NewRegistry()))
	link := func(query string) string { return "https://www.amazon.in/s?k=" + query }
	svc := deals.NewService(&mockAggregator{}, cache, nil, link, nil)

	res := svc.Search(context.Background(), "tshirt")
	if res.AffiliateLink != "https://www.amazon.in/s?k=tshirt" {
		t.Fatalf("unexpected affiliate link %q", res.AffiliateLink)
	}
}

type failingCollector struct{ name string }

func (f *failingCollector) Name() string { return f.name }

func (f *failingCollector) Collect(ctx context.Context, query string) ([]models.RawOffer, error) {
	return nil, errors.New("upstream down")
}

func TestService_Search_EndToEndSeedFallback(t *testing.T) {
	metrics := obs.NewMetrics(prometheus.NewRegistry())
	agg := deals.NewAggregator(
		[]deals.Collector{&failingCollector{"amazon"}, &failingCollector{"flipkart"}},
		deals.GroupByIdentity,
		deals.PolicyMinMax,
		nil,
		metrics,
	)
	svc := deals.NewService(agg, deals.NewCache(time.Minute, metrics), nil, nil, nil)

	res := svc.Search(context.Background(), "tshirt")
	if len(res.Results) != 1 {
		t.Fatalf("expected a single seeded deal result, got %d", len(res.Results))
	}
	r := res.Results[0]
	if r.BestDeal.PriceValue != 899 || r.BestDeal.Platform != "Myntra" {
		t.Fatalf("expected the 899 Myntra seed as best deal, got %+v", r.BestDeal)
	}
	if len(r.OtherOffers) != 1 || r.OtherOffers[0].PriceValue != 949 || r.OtherOffers[0].Platform != "Ajio" {
		t.Fatalf("expected the 949 Ajio seed in other offers, got %+v", r.OtherOffers)
	}
	if res.Stats.CollectorsFailed != 2 {
		t.Fatalf("both collectors failed, stats = %+v", res.Stats)
	}
}

func TestService_Suggest(t *testing.T) {
	catalog := []models.RawOffer{
		{Name: "Levi's Men's Printed T-Shirt", Platform: "Myntra"},
		{Name: "Levi's Men's Printed T-Shirt", Platform: "Ajio"}, // duplicate name
		{Name: "Nike Air Max Running Shoes", Platform: "Amazon"},
	}
	svc := newTestService(&mockAggregator{}, time.Minute, catalog)

	got := svc.Suggest("levi")
	want := []string{"Levi's Men's Printed T-Shirt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Suggest(\"levi\") = %v, want %v", got, want)
	}
}

func TestService_Suggest_LimitAndOrder(t *testing.T) {
	var catalog []models.RawOffer
	names := []string{"shirt a", "shirt b", "shirt c", "shirt d", "shirt e", "shirt f"}
	for _, n := range names {
		catalog = append(catalog, models.RawOffer{Name: n})
	}
	svc := newTestService(&mockAggregator{}, time.Minute, catalog)

	got := svc.Suggest("shirt")
	if len(got) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(got))
	}
	if !reflect.DeepEqual(got, []string{"shirt a", "shirt b", "shirt c", "shirt d", "shirt e"}) {
		t.Fatalf("first-seen order not preserved: %v", got)
	}
}

func TestService_Suggest_EmptyQuery(t *testing.T) {
	svc := newTestService(&mockAggregator{}, time.Minute, []models.RawOffer{{Name: "X"}})
	if got := svc.Suggest("  !! "); len(got) != 0 {
		t.Fatalf("expected no suggestions, got %v", got)
	}
}
