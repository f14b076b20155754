package deals

import "github.com/Krisna-19/dealcompare/internal/models"

// Static fallback offers, served only when every collector came back
// empty-handed after price parsing. Keys are in SeedKey form.
var seedOffers = map[string][]models.RawOffer{
	"tshirt": {
		{
			Name:         "Levi's Men's Printed T-Shirt",
			Price:        "₹899",
			Rating:       4.3,
			Platform:     "Myntra",
			DeliveryDays: 3,
			ProductURL:   "https://www.myntra.com",
		},
		{
			Name:         "Levi's Men's Printed T-Shirt",
			Price:        "₹949",
			Rating:       4.2,
			Platform:     "Ajio",
			DeliveryDays: 4,
			ProductURL:   "https://www.ajio.com",
		},
	},
	"mobile": {
		{
			Name:         "Samsung Galaxy S23",
			Price:        "₹69999",
			Rating:       4.6,
			Platform:     "Flipkart",
			DeliveryDays: 2,
			ProductURL:   "https://www.flipkart.com",
		},
		{
			Name:         "Samsung Galaxy S23",
			Price:        "₹71999",
			Rating:       4.5,
			Platform:     "Amazon",
			DeliveryDays: 3,
			ProductURL:   "https://www.amazon.in",
		},
	},
}

// LookupSeed returns the seed offers for a query key, nil when unknown.
func LookupSeed(queryKey string) []models.RawOffer {
	return seedOffers[queryKey]
}
