package routes

import (
	"time"

	"github.com/Krisna-19/dealcompare/internal/httpapi"
	"github.com/Krisna-19/dealcompare/internal/logger"
	mid "github.com/Krisna-19/dealcompare/internal/middleware"
	"github.com/Krisna-19/dealcompare/internal/obs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func GetRoutes(h *httpapi.Handler, metrics *obs.Metrics, log *logger.Logger) *chi.Mux {
	r := chi.NewRouter()
	// Useful built-in middlewares
	r.Use(middleware.RealIP)    // proper client IP extraction
	r.Use(middleware.RequestID) // sets request ID header
	r.Use(middleware.Recoverer) // built-in recoverer to avoid panics taking server down

	// the web UI runs on another origin during development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(mid.MetricsMiddleware(metrics))
	r.Use(mid.LoggingMiddleware(log))
	r.Use(mid.TimeoutMiddleware(10 * time.Second))

	// endpoints
	r.Get("/", h.Root)
	r.Get("/search", h.Search)
	r.Get("/suggest", h.Suggest)
	r.Get("/healthz", h.Healthz)
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	return r
}
