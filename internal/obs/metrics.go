package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	SearchesTotal       prometheus.Counter
	CacheHitsTotal      prometheus.Counter
	CacheMissesTotal    prometheus.Counter
	RateLimitDropsTotal prometheus.Counter
	SeedFallbacksTotal  prometheus.Counter

	CollectorErrors     *prometheus.CounterVec
	CollectorLatency    *prometheus.HistogramVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec
	Registry            *prometheus.Registry
}

// Create Prometheus collectors and register them
func NewMetrics(p *prometheus.Registry) *Metrics {
	m := &Metrics{
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "deal_searches_total",
			Help: "Total number of incoming search requests",
		}),
		CacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "deal_cache_hits_total",
			Help: "Number of result-cache hits",
		}),
		CacheMissesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "deal_cache_misses_total",
			Help: "Number of result-cache misses",
		}),
		RateLimitDropsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "deal_ratelimit_drops_total",
			Help: "Requests dropped due to rate limiting",
		}),
		SeedFallbacksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "deal_seed_fallbacks_total",
			Help: "Searches answered from static seed offers",
		}),
		CollectorErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "collector_errors_total",
			Help: "Errors returned by each offer collector",
		}, []string{"collector"},
		),
		CollectorLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "collector_latency_seconds",
				Help:    "Latency of each offer collector",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"collector"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		Registry: p,
	}

	p.MustRegister(
		m.SearchesTotal,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.RateLimitDropsTotal,
		m.SeedFallbacksTotal,
		m.CollectorErrors,
		m.CollectorLatency,
		m.HTTPRequestDuration,
		m.HTTPRequestsTotal,
	)

	return m
}

func (m *Metrics) IncSearches()       { m.SearchesTotal.Inc() }
func (m *Metrics) IncCacheHits()      { m.CacheHitsTotal.Inc() }
func (m *Metrics) IncCacheMisses()    { m.CacheMissesTotal.Inc() }
func (m *Metrics) IncRateLimitDrops() { m.RateLimitDropsTotal.Inc() }
func (m *Metrics) IncSeedFallbacks()  { m.SeedFallbacksTotal.Inc() }

func (m *Metrics) IncCollectorFailure(collector string) {
	m.CollectorErrors.WithLabelValues(collector).Inc()
}

func (m *Metrics) ObserveCollectorLatency(collector string, seconds float64) {
	m.CollectorLatency.WithLabelValues(collector).Observe(seconds)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
