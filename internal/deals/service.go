package deals

import (
	"context"
	"strings"

	"github.com/Krisna-19/dealcompare/internal/logger"
	"github.com/Krisna-19/dealcompare/internal/models"
	"go.uber.org/zap"
)

const maxSuggestions = 5

// LinkBuilder produces an affiliate search URL for a query.
type LinkBuilder func(query string) string

// Service fronts the aggregation pipeline with the result cache and turns
// every failure into a structured response. It never returns an error to
// the HTTP layer.
type Service struct {
	agg     AggregatorService
	cache   CacheService
	catalog []models.RawOffer
	link    LinkBuilder
	log     *logger.Logger
}

func NewService(agg AggregatorService, cache CacheService, catalog []models.RawOffer, link LinkBuilder, log *logger.Logger) *Service {
	if log == nil {
		log = &logger.Logger{}
	}
	return &Service{agg: agg, cache: cache, catalog: catalog, link: link, log: log}
}

// Search runs the pipeline for a query, consulting the cache first. An
// empty query short-circuits to a "No query" response without touching the
// cache or collectors.
func (s *Service) Search(ctx context.Context, query string) models.SearchResponse {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.SearchResponse{Message: "No query", Results: []models.DealResult{}}
	}

	resp, err := s.cache.GetOrCompute(ctx, CacheKey(query), func(ctx context.Context) (models.SearchResponse, error) {
		return s.compute(ctx, query), nil
	})
	if err != nil {
		s.log.Error("search aborted", zap.String("query", query), zap.Error(err))
		return models.SearchResponse{Message: "Search failed, please retry", Results: []models.DealResult{}}
	}
	return resp
}

// compute is the cache-miss path. Whatever goes wrong inside the pipeline,
// the caller gets a structured response; the detail stays in the logs.
func (s *Service) compute(ctx context.Context, query string) (resp models.SearchResponse) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("aggregation panic", zap.String("query", query), zap.Any("panic", r))
			resp = models.SearchResponse{Message: "Search failed, please retry", Results: []models.DealResult{}}
		}
	}()

	resp, err := s.agg.Aggregate(ctx, query)
	if err != nil {
		s.log.Error("aggregation failed", zap.String("query", query), zap.Error(err))
		return models.SearchResponse{Message: "Search failed, please retry", Results: []models.DealResult{}}
	}
	if s.link != nil {
		resp.AffiliateLink = s.link(query)
	}
	return resp
}

// Suggest returns up to 5 distinct catalog product names whose normalized
// form contains the normalized query, first-seen order preserved.
func (s *Service) Suggest(query string) []string {
	q := Normalize(query)
	if q == "" {
		return []string{}
	}

	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range s.catalog {
		if !strings.Contains(Normalize(p.Name), q) {
			continue
		}
		if _, dup := seen[p.Name]; dup {
			continue
		}
		seen[p.Name] = struct{}{}
		out = append(out, p.Name)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
