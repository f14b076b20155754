package deals

import (
	"math"

	"github.com/Krisna-19/dealcompare/internal/models"
)

// ScoringPolicy names one of the two supported scoring formulas.
type ScoringPolicy string

const (
	// PolicyWeighted blends rating, price ratio and delivery ratio:
	// (rating/5)*0.4 + (minPrice/price)*0.4 + (minDelivery/days)*0.2.
	PolicyWeighted ScoringPolicy = "weighted"
	// PolicyMinMax normalizes price and rating over the scope's range:
	// priceScore*0.7 + ratingScore*0.3, degenerate ranges scoring 1.
	PolicyMinMax ScoringPolicy = "minmax"
)

// ParseScoringPolicy validates a configured policy, defaulting to minmax.
func ParseScoringPolicy(s string) ScoringPolicy {
	if ScoringPolicy(s) == PolicyWeighted {
		return PolicyWeighted
	}
	return PolicyMinMax
}

// scope holds the comparison bounds of the set an offer is scored against.
type scope struct {
	minPrice    int
	maxPrice    int
	minRating   float64
	maxRating   float64
	minDelivery int
}

func newScope(offers []models.Offer) scope {
	sc := scope{
		minPrice:    offers[0].PriceValue,
		maxPrice:    offers[0].PriceValue,
		minRating:   offers[0].Rating,
		maxRating:   offers[0].Rating,
		minDelivery: offers[0].DeliveryDays,
	}
	for _, o := range offers[1:] {
		if o.PriceValue < sc.minPrice {
			sc.minPrice = o.PriceValue
		}
		if o.PriceValue > sc.maxPrice {
			sc.maxPrice = o.PriceValue
		}
		if o.Rating < sc.minRating {
			sc.minRating = o.Rating
		}
		if o.Rating > sc.maxRating {
			sc.maxRating = o.Rating
		}
		if o.DeliveryDays < sc.minDelivery {
			sc.minDelivery = o.DeliveryDays
		}
	}
	return sc
}

// ScoreGroup computes each offer's desirability within its group and
// returns the group with scored copies; the input offers are not mutated.
// Scores are rounded to 3 decimals for presentation determinism.
func ScoreGroup(g ProductGroup, policy ScoringPolicy) ProductGroup {
	if len(g.Offers) == 0 {
		return g
	}
	sc := newScope(g.Offers)
	scored := make([]models.Offer, len(g.Offers))
	for i, o := range g.Offers {
		o.Score = round3(scoreOffer(o, sc, policy))
		scored[i] = o
	}
	g.Offers = scored
	return g
}

func scoreOffer(o models.Offer, sc scope, policy ScoringPolicy) float64 {
	if policy == PolicyWeighted {
		return (o.Rating/5)*0.4 +
			(float64(sc.minPrice)/float64(o.PriceValue))*0.4 +
			(float64(sc.minDelivery)/float64(o.DeliveryDays))*0.2
	}

	priceScore := 1.0
	if sc.maxPrice != sc.minPrice {
		priceScore = float64(sc.maxPrice-o.PriceValue) / float64(sc.maxPrice-sc.minPrice)
	}
	ratingScore := 1.0
	if sc.maxRating != sc.minRating {
		ratingScore = (o.Rating - sc.minRating) / (sc.maxRating - sc.minRating)
	}
	return priceScore*0.7 + ratingScore*0.3
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
