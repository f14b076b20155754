package deals

import (
	"context"
	"errors"
	"testing"

	"github.com/Krisna-19/dealcompare/internal/models"
	"github.com/Krisna-19/dealcompare/internal/obs"
	"github.com/prometheus/client_golang/prometheus"
)

type staticCollector struct {
	name   string
	offers []models.RawOffer
	err    error
	panics bool
	calls  int
}

func (s *staticCollector) Name() string { return s.name }

func (s *staticCollector) Collect(ctx context.Context, query string) ([]models.RawOffer, error) {
	s.calls++
	if s.panics {
		panic("boom")
	}
	return s.offers, s.err
}

func newTestAggregator(cs ...Collector) *Aggregator {
	return NewAggregator(cs, GroupByIdentity, PolicyMinMax, nil, obs.NewMetrics(prometheus.NewRegistry()))
}

func TestAggregateMergesCollectors(t *testing.T) {
	c1 := &staticCollector{name: "c1", offers: []models.RawOffer{
		{Name: "iPhone 15", Brand: "Apple", Price: "₹65,999", Rating: 4.8, DeliveryDays: 1, Platform: "Amazon"},
	}}
	c2 := &staticCollector{name: "c2", offers: []models.RawOffer{
		{Name: "iPhone 15", Brand: "Apple", Price: "₹64,900", Rating: 4.7, DeliveryDays: 4, Platform: "Flipkart"},
	}}

	resp, err := newTestAggregator(c1, c2).Aggregate(context.Background(), "iphone")
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected 1 deal result, got %d", len(resp.Results))
	}
	r := resp.Results[0]
	if r.BestDeal.PriceValue != 64900 {
		t.Errorf("best deal price = %d, want 64900", r.BestDeal.PriceValue)
	}
	if len(r.OtherOffers) != 1 || r.OtherOffers[0].Platform != "Amazon" {
		t.Errorf("unexpected other offers: %+v", r.OtherOffers)
	}
	if resp.Stats.CollectorsSucceeded != 2 || resp.Stats.CollectorsFailed != 0 {
		t.Errorf("unexpected stats: %+v", resp.Stats)
	}
}

func TestAggregateIsolatesFailures(t *testing.T) {
	bad := &staticCollector{name: "bad", err: errors.New("connection refused")}
	angry := &staticCollector{name: "angry", panics: true}
	good := &staticCollector{name: "good", offers: []models.RawOffer{
		{Name: "Shoes", Brand: "Nike", Price: "₹7,999", Rating: 4.6, DeliveryDays: 2, Platform: "Amazon"},
	}}

	resp, err := newTestAggregator(bad, angry, good).Aggregate(context.Background(), "shoes")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Stats.CollectorsFailed != 2 || resp.Stats.CollectorsSucceeded != 1 {
		t.Fatalf("unexpected stats: %+v", resp.Stats)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("good collector's offers must survive, got %d results", len(resp.Results))
	}
}

func TestAggregateDropsUnparseablePrices(t *testing.T) {
	c := &staticCollector{name: "c", offers: []models.RawOffer{
		{Name: "Shoes", Brand: "Nike", Price: "free", Platform: "Amazon"},
		{Name: "Shoes", Brand: "Nike", Price: "₹7,999", Rating: 4.6, DeliveryDays: 2, Platform: "Myntra"},
	}}

	resp, err := newTestAggregator(c).Aggregate(context.Background(), "shoes")
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(resp.Results))
	}
	g := resp.Results[0]
	if g.BestDeal.Platform != "Myntra" || len(g.OtherOffers) != 0 {
		t.Fatalf("the free offer must be dropped before grouping: %+v", g)
	}
}

func TestAggregateSeedFallback(t *testing.T) {
	failing := &staticCollector{name: "down", err: errors.New("timeout")}

	resp, err := newTestAggregator(failing).Aggregate(context.Background(), "tshirt")
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Stats.Seeded {
		t.Fatal("expected seed fallback")
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected 1 seeded result, got %d", len(resp.Results))
	}
	r := resp.Results[0]
	if r.BestDeal.PriceValue != 899 || r.BestDeal.Platform != "Myntra" {
		t.Fatalf("expected the 899 Myntra seed as best, got %+v", r.BestDeal)
	}
	if len(r.OtherOffers) != 1 || r.OtherOffers[0].PriceValue != 949 || r.OtherOffers[0].Platform != "Ajio" {
		t.Fatalf("expected the 949 Ajio seed in others, got %+v", r.OtherOffers)
	}
}

func TestAggregateSeedKeyIgnoresWhitespace(t *testing.T) {
	resp, err := newTestAggregator().Aggregate(context.Background(), "T Shirt")
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Stats.Seeded || len(resp.Results) != 1 {
		t.Fatalf("expected 'T Shirt' to reach the tshirt seeds: %+v", resp.Stats)
	}
}

func TestAggregateNoOffersNoSeeds(t *testing.T) {
	empty := &staticCollector{name: "empty"}

	resp, err := newTestAggregator(empty).Aggregate(context.Background(), "spaceship")
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Results) != 0 {
		t.Fatalf("expected zero results, got %d", len(resp.Results))
	}
	if resp.Message == "" {
		t.Fatal("zero-result responses still carry a message")
	}
}

func TestAggregateSingleGroupMode(t *testing.T) {
	c := &staticCollector{name: "c", offers: []models.RawOffer{
		{Name: "iPhone 15", Brand: "Apple", Price: "₹65,999", Rating: 4.8, DeliveryDays: 1, Platform: "Amazon"},
		{Name: "Galaxy S23", Brand: "Samsung", Price: "₹69,999", Rating: 4.6, DeliveryDays: 2, Platform: "Flipkart"},
	}}
	agg := NewAggregator([]Collector{c}, SingleGroup, PolicyWeighted, nil, obs.NewMetrics(prometheus.NewRegistry()))

	resp, err := agg.Aggregate(context.Background(), "phone")
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("single-group mode emits exactly one deal result, got %d", len(resp.Results))
	}
	if got := 1 + len(resp.Results[0].OtherOffers); got != 2 {
		t.Fatalf("expected both offers in the one group, got %d", got)
	}
}
