package deals

import (
	"context"
	"fmt"
	"time"

	"github.com/Krisna-19/dealcompare/internal/logger"
	"github.com/Krisna-19/dealcompare/internal/models"
	"github.com/Krisna-19/dealcompare/internal/obs"
	"go.uber.org/zap"
)

// Aggregator runs the full collect → parse → fallback → group → score →
// select pipeline for one query. Collectors are invoked sequentially, each
// behind its own guard, so a failing source degrades to zero offers.
type Aggregator struct {
	collectors []Collector
	grouping   GroupingMode
	policy     ScoringPolicy
	log        *logger.Logger
	metrics    *obs.Metrics
}

func NewAggregator(collectors []Collector, grouping GroupingMode, policy ScoringPolicy, log *logger.Logger, m *obs.Metrics) *Aggregator {
	if log == nil {
		log = &logger.Logger{}
	}
	return &Aggregator{
		collectors: collectors,
		grouping:   grouping,
		policy:     policy,
		log:        log,
		metrics:    m,
	}
}

// collectOne guards a single collector call: an error or panic becomes a
// CollectorResult with Err set, never a failed request. Offers with
// unparseable prices are dropped here.
func (a *Aggregator) collectOne(ctx context.Context, c Collector, query string) (res CollectorResult) {
	res.Collector = c.Name()
	defer func() {
		if r := recover(); r != nil {
			res = CollectorResult{Collector: c.Name(), Err: fmt.Errorf("collector panic: %v", r)}
		}
	}()

	start := time.Now()
	raw, err := c.Collect(ctx, query)
	if a.metrics != nil {
		a.metrics.ObserveCollectorLatency(c.Name(), time.Since(start).Seconds())
	}
	if err != nil {
		res.Err = err
		return res
	}

	offers := make([]models.Offer, 0, len(raw))
	for _, r := range raw {
		if o, ok := BuildOffer(r); ok {
			offers = append(offers, o)
		}
	}
	res.Offers = offers
	return res
}

func (a *Aggregator) Aggregate(ctx context.Context, query string) (models.SearchResponse, error) {
	start := time.Now()

	var all []models.Offer
	succeeded, failed := 0, 0
	for _, c := range a.collectors {
		res := a.collectOne(ctx, c, query)
		if res.Err != nil {
			failed++
			a.log.Warn("collector failed",
				zap.String("collector", res.Collector),
				zap.String("query", query),
				zap.Error(res.Err),
			)
			if a.metrics != nil {
				a.metrics.IncCollectorFailure(res.Collector)
			}
			continue
		}
		succeeded++
		all = append(all, res.Offers...)
	}

	seeded := false
	if len(all) == 0 {
		for _, r := range LookupSeed(SeedKey(query)) {
			if o, ok := BuildOffer(r); ok {
				all = append(all, o)
			}
		}
		if seeded = len(all) > 0; seeded {
			a.log.Info("serving seed offers", zap.String("query", query))
			if a.metrics != nil {
				a.metrics.IncSeedFallbacks()
			}
		}
	}

	resp := models.SearchResponse{Results: []models.DealResult{}}
	resp.Stats.CollectorsTotal = len(a.collectors)
	resp.Stats.CollectorsSucceeded = succeeded
	resp.Stats.CollectorsFailed = failed
	resp.Stats.Seeded = seeded

	if len(all) == 0 {
		resp.Message = fmt.Sprintf("No deals found for %q", query)
		resp.Stats.DurationMs = time.Since(start).Milliseconds()
		return resp, nil
	}

	for _, g := range Group(all, a.grouping) {
		g = ScoreGroup(g, a.policy)
		best, others := SelectBest(g)
		resp.Results = append(resp.Results, models.DealResult{
			ProductName: g.Name,
			Brand:       g.Brand,
			BestDeal:    best,
			OtherOffers: others,
		})
	}

	resp.Message = fmt.Sprintf("Found %d best deals", len(resp.Results))
	resp.Stats.DurationMs = time.Since(start).Milliseconds()
	return resp, nil
}
