package deals

import (
	"context"

	"github.com/Krisna-19/dealcompare/internal/models"
)

// Collector pulls raw offers for a query from one retail source. A failing
// or panicking collector contributes zero offers; it never aborts a search.
type Collector interface {
	Collect(ctx context.Context, query string) ([]models.RawOffer, error)
	Name() string
}

// CollectorResult is the explicit outcome of one guarded collector call:
// either parsed usable offers or the reason nothing came back.
type CollectorResult struct {
	Collector string
	Offers    []models.Offer
	Err       error
}

// ProductGroup is one logical product: the (name, brand) identity plus its
// offers in first-seen order.
type ProductGroup struct {
	Name   string
	Brand  string
	Offers []models.Offer
}

type AggregatorService interface {
	Aggregate(ctx context.Context, query string) (models.SearchResponse, error)
}

type ComputeFunc func(ctx context.Context) (models.SearchResponse, error)

type CacheService interface {
	GetOrCompute(ctx context.Context, key string, fn ComputeFunc) (models.SearchResponse, error)
}

type RateLimiter interface {
	Allow(ip string) bool
}
