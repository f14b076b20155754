package deals

import "github.com/Krisna-19/dealcompare/internal/models"

// SelectBest picks the group's highest-scoring offer. Ties go to the offer
// seen first, so selection is deterministic for identical input. The
// remainder keeps the group's insertion order; best is removed by position
// rather than field equality, so a coincidental duplicate survives.
func SelectBest(g ProductGroup) (models.Offer, []models.Offer) {
	best := 0
	for i := 1; i < len(g.Offers); i++ {
		if g.Offers[i].Score > g.Offers[best].Score {
			best = i
		}
	}

	others := make([]models.Offer, 0, len(g.Offers)-1)
	for i, o := range g.Offers {
		if i == best {
			continue
		}
		others = append(others, o)
	}
	return g.Offers[best], others
}
