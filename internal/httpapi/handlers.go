package httpapi

import (
	"context"
	"net"
	"net/http"

	"github.com/Krisna-19/dealcompare/internal/deals"
	"github.com/Krisna-19/dealcompare/internal/models"
	"github.com/Krisna-19/dealcompare/internal/obs"
	"github.com/Krisna-19/dealcompare/internal/validator"
	"github.com/google/uuid"
)

// SearchService is what the handlers need from the deal service. Search
// always yields a structured response, so the handler never maps
// aggregation failures to a 5xx.
type SearchService interface {
	Search(ctx context.Context, query string) models.SearchResponse
	Suggest(query string) []string
}

type Handler struct {
	svc         SearchService
	ratelimiter deals.RateLimiter
	metrics     *obs.Metrics
}

func NewHandler(svc SearchService, rl deals.RateLimiter, m *obs.Metrics) *Handler {
	return &Handler{svc: svc, ratelimiter: rl, metrics: m}
}

func (h *Handler) ipFromRequest(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func requestID(r *http.Request) string {
	// chi's middleware.RequestID sets X-Request-Id header
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		return rid
	}
	return uuid.New().String()
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncSearches()
	reqID := requestID(r)

	query, err := validator.ValidateQuery(r.URL.Query().Get("query"))
	if err != nil {
		BadRequest(w, err.Error(), map[string]string{"request_id": reqID})
		return
	}

	ip := h.ipFromRequest(r)
	if !h.ratelimiter.Allow(ip) {
		h.metrics.IncRateLimitDrops()
		TooManyRequests(w, "rate limit exceeded", map[string]string{"request_id": reqID})
		return
	}

	res := h.svc.Search(r.Context(), query)
	WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	query, err := validator.ValidateQuery(r.URL.Query().Get("query"))
	if err != nil {
		BadRequest(w, err.Error(), map[string]string{"request_id": reqID})
		return
	}

	WriteJSON(w, http.StatusOK, models.SuggestResponse{Suggestions: h.svc.Suggest(query)})
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "DealCompare API running"})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
