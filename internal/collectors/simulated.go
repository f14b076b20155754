package collectors

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Krisna-19/dealcompare/internal/models"
)

// SimulatedCollector jitters prices of a base catalog and fails a
// configurable fraction of calls. Used for local runs and load tests where
// no real marketplace source is wired up.
type SimulatedCollector struct {
	name       string
	base       *CatalogCollector
	avgLatency float64
	failRate   float64
	rng        *rand.Rand
}

func NewSimulatedCollector(name string, products []models.RawOffer, avgLatency, failRate float64, seedOffset int64) *SimulatedCollector {
	seed := time.Now().UnixNano() + seedOffset
	return &SimulatedCollector{
		name:       name,
		base:       NewCatalogCollector(name, products),
		avgLatency: avgLatency,
		failRate:   failRate,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

func (s *SimulatedCollector) Name() string { return s.name }

func (s *SimulatedCollector) Collect(ctx context.Context, query string) ([]models.RawOffer, error) {
	select {
	case <-time.After(sampleLatency(s.rng, s.avgLatency)):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if s.rng.Float64() < s.failRate {
		return nil, errors.New("collector error (simulated)")
	}

	matched, err := s.base.Collect(ctx, query)
	if err != nil {
		return nil, err
	}

	out := make([]models.RawOffer, 0, len(matched))
	for _, p := range matched {
		p.Platform = s.name
		// nudge the price so sources disagree; the parser sees a plain
		// rupee amount without separators
		p.Price = fmt.Sprintf("₹%d", jitterPrice(s.rng, p.Price))
		out = append(out, p)
	}
	return out, nil
}

func sampleLatency(rng *rand.Rand, avg float64) time.Duration {
	ms := 5 + rng.ExpFloat64()*avg*50.0
	return time.Duration(ms) * time.Millisecond
}

func jitterPrice(rng *rand.Rand, display string) int {
	v := 0
	for _, r := range display {
		if r >= '0' && r <= '9' {
			v = v*10 + int(r-'0')
		}
	}
	if v == 0 {
		v = 999
	}
	// up to 5% swing either way
	swing := v / 20
	if swing > 0 {
		v += rng.Intn(2*swing+1) - swing
	}
	if v <= 0 {
		v = 1
	}
	return v
}
