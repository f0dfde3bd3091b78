// Package pricing holds the single price computation shared by the catalog,
// the cart and checkout so a product never shows two different prices.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// FinalPrice returns round(originalPrice * (1 - discountPercent/100)) with
// halves rounded up. Discounts are clamped to the 0-100 range.
func FinalPrice(originalPrice, discountPercent int) int {
	discount := clampPercent(discountPercent)
	price := decimal.NewFromInt(int64(originalPrice)).
		Mul(hundred.Sub(decimal.NewFromInt(int64(discount)))).
		Div(hundred)
	// Round is half away from zero; catalog prices are positive so this is half up.
	return int(price.Round(0).IntPart())
}

// LineTotal multiplies a final unit price by a quantity.
func LineTotal(finalPrice, qty int) int {
	return int(decimal.NewFromInt(int64(finalPrice)).Mul(decimal.NewFromInt(int64(qty))).IntPart())
}

// Savings is the amount knocked off the original price.
func Savings(originalPrice, discountPercent int) int {
	return originalPrice - FinalPrice(originalPrice, discountPercent)
}

func clampPercent(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
