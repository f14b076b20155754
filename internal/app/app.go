package app

import (
	"net/http"
	"time"

	"github.com/Krisna-19/dealcompare/internal/affiliate"
	"github.com/Krisna-19/dealcompare/internal/collectors"
	"github.com/Krisna-19/dealcompare/internal/config"
	"github.com/Krisna-19/dealcompare/internal/deals"
	"github.com/Krisna-19/dealcompare/internal/httpapi"
	"github.com/Krisna-19/dealcompare/internal/httpx"
	"github.com/Krisna-19/dealcompare/internal/logger"
	"github.com/Krisna-19/dealcompare/internal/obs"
	"github.com/Krisna-19/dealcompare/internal/routes"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	Router  http.Handler
	Service *deals.Service
	Cache   deals.CacheService
	Metrics *obs.Metrics
}

// New wires collectors, cache, service and router from config.
func New(opts *config.Options, log *logger.Logger) *App {
	registry := prometheus.NewRegistry()
	metrics := obs.NewMetrics(registry)

	catalog := collectors.DefaultCatalog()
	collectorList := []deals.Collector{
		collectors.NewCatalogCollector("catalog", catalog),
	}
	if url := opts.SourceURL(); url != "" {
		client := httpx.New(8*time.Second, 3)
		collectorList = append(collectorList, collectors.NewRemoteCollector("remote", url, client))
	}
	if opts.Simulate() {
		collectorList = append(collectorList,
			collectors.NewSimulatedCollector("amazon-sim", catalog, 0.2, 0.10, 0),
			collectors.NewSimulatedCollector("flipkart-sim", catalog, 0.25, 0.12, 1),
			collectors.NewSimulatedCollector("myntra-sim", catalog, 0.15, 0.05, 2),
		)
	}

	agg := deals.NewAggregator(
		collectorList,
		deals.ParseGroupingMode(opts.GroupingMode()),
		deals.ParseScoringPolicy(opts.ScoringPolicy()),
		log,
		metrics,
	)
	cache := deals.NewCache(opts.CacheTTL(), metrics)

	tag := opts.AffiliateTag()
	link := func(query string) string {
		return affiliate.BuildAmazonSearchLink(query, tag)
	}

	svc := deals.NewService(agg, cache, catalog, link, log)
	rl := deals.NewIPRateLimiter(opts.RateLimitCap(), opts.RateLimitWin())
	h := httpapi.NewHandler(svc, rl, metrics)

	return &App{
		Router:  routes.GetRoutes(h, metrics, log),
		Service: svc,
		Cache:   cache,
		Metrics: metrics,
	}
}
