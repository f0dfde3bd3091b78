// Package cart holds the storefront cart: an ordered list of (product, size)
// lines with quantities. Every operation is total; unknown product ids or
// sizes are ignored rather than reported.
package cart

import (
	"github.com/angelmondragon/skt-storefront/internal/catalog"
	"github.com/angelmondragon/skt-storefront/pkg/pricing"
)

// Line is one (product, size) entry. FinalPrice is captured when the line is created.
type Line struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Size       string `json:"size"`
	Qty        int    `json:"qty"`
	FinalPrice int    `json:"final_price"`
}

// Total is the line's contribution to the cart total.
func (l Line) Total() int {
	return pricing.LineTotal(l.FinalPrice, l.Qty)
}

func (l Line) matches(productID, size string) bool {
	return l.ProductID == productID && l.Size == size
}

// Cart keeps lines in insertion order. The zero value is an empty cart.
type Cart struct {
	lines []Line
}

// Add puts one unit of product in the cart. A blank size means catalog.DefaultSize.
// Adding a (product, size) pair that is already present bumps its quantity.
func (c *Cart) Add(product catalog.Product, size string) {
	if size == "" {
		size = catalog.DefaultSize
	}
	for i := range c.lines {
		if c.lines[i].matches(product.ID, size) {
			c.lines[i].Qty++
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID:  product.ID,
		Name:       product.Name,
		Color:      product.Color,
		Size:       size,
		Qty:        1,
		FinalPrice: product.FinalPrice(),
	})
}

// ChangeQty adjusts the quantity of a line by delta, never going below 1.
// Lines are only ever removed through Remove.
func (c *Cart) ChangeQty(productID, size string, delta int) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.matches(productID, size) {
			line.Qty = max(1, line.Qty+delta)
		}
		if line.Qty > 0 {
			kept = append(kept, line)
		}
	}
	c.lines = kept
}

// Remove drops the line for (productID, size). A blank size drops every size of the product.
func (c *Cart) Remove(productID, size string) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.ProductID == productID && (size == "" || line.Size == size) {
			continue
		}
		kept = append(kept, line)
	}
	c.lines = kept
}

// Total sums FinalPrice * Qty over every line.
func (c *Cart) Total() int {
	total := 0
	for _, line := range c.lines {
		total += line.Total()
	}
	return total
}

// ItemCount is the number of units across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, line := range c.lines {
		n += line.Qty
	}
	return n
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Contains reports whether any size of the product is in the cart.
func (c *Cart) Contains(productID string) bool {
	for _, line := range c.lines {
		if line.ProductID == productID {
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.lines = nil
}
