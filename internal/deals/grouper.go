package deals

import "github.com/Krisna-19/dealcompare/internal/models"

// GroupingMode selects the grouping granularity.
type GroupingMode string

const (
	// GroupByIdentity partitions offers by exact (name, brand) equality,
	// one group per logical product.
	GroupByIdentity GroupingMode = "identity"
	// SingleGroup collapses every offer for the query into one group,
	// the cross-source mode where independent collectors feed one query.
	SingleGroup GroupingMode = "single"
)

// ParseGroupingMode validates a configured mode, defaulting to identity.
func ParseGroupingMode(s string) GroupingMode {
	if GroupingMode(s) == SingleGroup {
		return SingleGroup
	}
	return GroupByIdentity
}

// Group partitions offers into logical products. Group order follows the
// first-seen offer of each key; members keep insertion order, so grouping
// the same input twice yields identical membership and order.
func Group(offers []models.Offer, mode GroupingMode) []ProductGroup {
	if len(offers) == 0 {
		return nil
	}

	if mode == SingleGroup {
		g := ProductGroup{
			Name:   offers[0].Name,
			Brand:  offers[0].Brand,
			Offers: append([]models.Offer(nil), offers...),
		}
		return []ProductGroup{g}
	}

	type identity struct{ name, brand string }
	index := make(map[identity]int, len(offers))
	var groups []ProductGroup
	for _, o := range offers {
		key := identity{o.Name, o.Brand}
		if i, ok := index[key]; ok {
			groups[i].Offers = append(groups[i].Offers, o)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, ProductGroup{
			Name:   o.Name,
			Brand:  o.Brand,
			Offers: []models.Offer{o},
		})
	}
	return groups
}
