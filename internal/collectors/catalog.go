package collectors

import (
	"context"
	"strings"

	"github.com/Krisna-19/dealcompare/internal/deals"
	"github.com/Krisna-19/dealcompare/internal/models"
)

// CatalogCollector serves offers from an in-memory product catalog,
// filtered by normalized substring containment over name, brand and
// category. It is the always-on source and also backs suggestions.
type CatalogCollector struct {
	name     string
	products []models.RawOffer
}

func NewCatalogCollector(name string, products []models.RawOffer) *CatalogCollector {
	return &CatalogCollector{name: name, products: products}
}

func (c *CatalogCollector) Name() string { return c.name }

func (c *CatalogCollector) Collect(ctx context.Context, query string) ([]models.RawOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := deals.Normalize(query)
	if q == "" {
		return nil, nil
	}

	var out []models.RawOffer
	for _, p := range c.products {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func matches(p models.RawOffer, q string) bool {
	for _, field := range []string{p.Name, p.Brand, p.Category} {
		if field == "" {
			continue
		}
		if strings.Contains(deals.Normalize(field), q) {
			return true
		}
	}
	return false
}
