package deals

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Krisna-19/dealcompare/internal/models"
)

// ErrBadPrice marks a display price that could not be converted to a value.
var ErrBadPrice = errors.New("unparseable price")

// Defaults applied when a source omits the field.
const (
	defaultRating       = 3.5
	defaultDeliveryDays = 4
)

var priceCleaner = strings.NewReplacer(
	"₹", "",
	"Rs.", "",
	"Rs", "",
	"$", "",
	"€", "",
	",", "",
	" ", "",
)

// ParsePrice converts a display price like "₹65,999" to its integer value.
// The currency symbol and thousands separators are stripped; any other
// residue fails the parse, as does an empty string or a non-positive value.
// Callers drop the offer on error, never the whole request.
func ParsePrice(text string) (int, error) {
	s := priceCleaner.Replace(strings.TrimSpace(text))
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrBadPrice, text)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadPrice, text)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: non-positive %q", ErrBadPrice, text)
	}
	return v, nil
}

// BuildOffer parses the raw offer's price and applies rating/delivery
// defaults, producing the immutable Offer the pipeline works with.
// Returns false when the price does not parse; the raw offer is unusable.
func BuildOffer(raw models.RawOffer) (models.Offer, bool) {
	value, err := ParsePrice(raw.Price)
	if err != nil {
		return models.Offer{}, false
	}

	o := models.Offer{
		Name:         raw.Name,
		Brand:        raw.Brand,
		Category:     raw.Category,
		PriceText:    raw.Price,
		PriceValue:   value,
		Rating:       raw.Rating,
		DeliveryDays: raw.DeliveryDays,
		Platform:     raw.Platform,
		ProductURL:   raw.ProductURL,
	}
	if o.Rating == 0 {
		o.Rating = defaultRating
	}
	if o.DeliveryDays <= 0 {
		o.DeliveryDays = defaultDeliveryDays
	}
	return o, true
}
