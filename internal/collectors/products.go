package collectors

import "github.com/Krisna-19/dealcompare/internal/models"

// DefaultCatalog is the built-in cross-platform product catalog. It doubles
// as the suggestion source.
func DefaultCatalog() []models.RawOffer {
	return []models.RawOffer{
		{
			Name:         "Apple iPhone 15 (128GB, Blue)",
			Brand:        "Apple",
			Category:     "Electronics",
			Price:        "₹65,999",
			Platform:     "Amazon",
			Rating:       4.8,
			DeliveryDays: 1,
			ProductURL:   "https://amazon.in/iphone15",
		},
		{
			Name:         "Apple iPhone 15 (128GB, Blue)",
			Brand:        "Apple",
			Category:     "Electronics",
			Price:        "₹64,900",
			Platform:     "Flipkart",
			Rating:       4.7,
			DeliveryDays: 4,
			ProductURL:   "https://flipkart.com/iphone15",
		},
		{
			Name:         "Sony WH-1000XM5 Headphones",
			Brand:        "Sony",
			Category:     "Electronics",
			Price:        "₹26,990",
			Platform:     "Amazon",
			Rating:       4.7,
			DeliveryDays: 2,
			ProductURL:   "https://amazon.in/sony-xm5",
		},
		{
			Name:         "Sony WH-1000XM5 Headphones",
			Brand:        "Sony",
			Category:     "Electronics",
			Price:        "₹27,499",
			Platform:     "Flipkart",
			Rating:       4.6,
			DeliveryDays: 3,
			ProductURL:   "https://flipkart.com/sony-xm5",
		},
		{
			Name:         "Levi's Men's Printed T-Shirt",
			Brand:        "Levi's",
			Category:     "Fashion",
			Price:        "₹899",
			Platform:     "Myntra",
			Rating:       4.3,
			DeliveryDays: 3,
			ProductURL:   "https://myntra.com/levis-tshirt",
		},
		{
			Name:         "Levi's Men's Printed T-Shirt",
			Brand:        "Levi's",
			Category:     "Fashion",
			Price:        "₹949",
			Platform:     "Ajio",
			Rating:       4.2,
			DeliveryDays: 4,
			ProductURL:   "https://ajio.com/levis-tshirt",
		},
		{
			Name:         "Nike Air Max Running Shoes",
			Brand:        "Nike",
			Category:     "Fashion",
			Price:        "₹7,999",
			Platform:     "Amazon",
			Rating:       4.6,
			DeliveryDays: 2,
			ProductURL:   "https://amazon.in/nike-airmax",
		},
		{
			Name:         "Nike Air Max Running Shoes",
			Brand:        "Nike",
			Category:     "Fashion",
			Price:        "₹7,699",
			Platform:     "Myntra",
			Rating:       4.7,
			DeliveryDays: 3,
			ProductURL:   "https://myntra.com/nike-airmax",
		},
	}
}
