package catalog

import "github.com/angelmondragon/skt-storefront/pkg/pricing"

// Product is a catalog entry. Products are defined at process start and never mutated.
type Product struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Color           string `json:"color"`
	OriginalPrice   int    `json:"original_price"`
	DiscountPercent int    `json:"discount_percent"`
	Tag             string `json:"tag"`
}

// FinalPrice is the discounted price shown and charged for the product.
func (p Product) FinalPrice() int {
	return pricing.FinalPrice(p.OriginalPrice, p.DiscountPercent)
}

// Savings is how much the discount takes off the original price.
func (p Product) Savings() int {
	return pricing.Savings(p.OriginalPrice, p.DiscountPercent)
}

var defaultProducts = []Product{
	{ID: "tee", Name: "SKT Core Tee", Color: "Cloud White", OriginalPrice: 60, DiscountPercent: 20, Tag: "Today’s Deal"},
	{ID: "pants", Name: "SKT Everyday Pants", Color: "Graphite", OriginalPrice: 110, DiscountPercent: 16, Tag: "Limited Offer"},
	{ID: "jacket", Name: "SKT Utility Jacket", Color: "Sandstone", OriginalPrice: 185, DiscountPercent: 20, Tag: "Today’s Deal"},
	{ID: "hoodie", Name: "SKT Air Knit Hoodie", Color: "Midnight", OriginalPrice: 140, DiscountPercent: 16, Tag: "Today’s Deal"},
	{ID: "cap", Name: "SKT Trail Cap", Color: "Forest", OriginalPrice: 45, DiscountPercent: 22, Tag: "Limited Offer"},
}
