package models

// RawOffer is what a collector hands back: price still a display string,
// rating and delivery possibly missing (zero).
type RawOffer struct {
	Name         string  `json:"name"`
	Brand        string  `json:"brand,omitempty"`
	Category     string  `json:"category,omitempty"`
	Price        string  `json:"price"`
	Rating       float64 `json:"rating,omitempty"`
	DeliveryDays int     `json:"delivery_days,omitempty"`
	Platform     string  `json:"platform"`
	ProductURL   string  `json:"product_url"`
}

// Offer carries both the raw display fields and the derived ones
// (PriceValue, Score). It is built once from a RawOffer and never mutated
// afterwards; scoring returns copies with Score set.
type Offer struct {
	Name         string  `json:"name"`
	Brand        string  `json:"brand,omitempty"`
	Category     string  `json:"category,omitempty"`
	PriceText    string  `json:"price"`
	PriceValue   int     `json:"price_value"`
	Rating       float64 `json:"rating"`
	DeliveryDays int     `json:"delivery_days"`
	Platform     string  `json:"platform"`
	ProductURL   string  `json:"product_url"`
	Score        float64 `json:"score"`
}

// DealResult is the best offer for one logical product plus the remaining
// offers in their original order.
type DealResult struct {
	ProductName string  `json:"product_name"`
	Brand       string  `json:"brand,omitempty"`
	BestDeal    Offer   `json:"best_deal"`
	OtherOffers []Offer `json:"other_offers"`
}

type SearchStats struct {
	CollectorsTotal     int   `json:"collectors_total"`
	CollectorsSucceeded int   `json:"collectors_succeeded"`
	CollectorsFailed    int   `json:"collectors_failed"`
	Seeded              bool  `json:"seeded,omitempty"`
	DurationMs          int64 `json:"duration_ms"`
}

type SearchResponse struct {
	Message       string       `json:"message"`
	Results       []DealResult `json:"results"`
	AffiliateLink string       `json:"affiliate_link,omitempty"`
	Stats         SearchStats  `json:"stats"`
}

type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}
