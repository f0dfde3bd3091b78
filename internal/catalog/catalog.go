package catalog

import (
	"fmt"
	"strings"
)

// DefaultSearchLimit caps product search results.
const DefaultSearchLimit = 6

// Catalog is the read-only product list every other component reads from.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// Default returns the SKT catalog.
func Default() *Catalog {
	c, err := New(defaultProducts)
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a catalog, rejecting duplicate ids and out-of-range prices.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("catalog: product %q has no id", p.Name)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		if p.OriginalPrice <= 0 {
			return nil, fmt.Errorf("catalog: product %q must have a positive price", p.ID)
		}
		if p.DiscountPercent < 0 || p.DiscountPercent > 100 {
			return nil, fmt.Errorf("catalog: product %q discount out of range", p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// List returns the products in catalog order.
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id string) (Product, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[idx], true
}

// FindByName matches a product by its display name, ignoring case.
func (c *Catalog) FindByName(name string) (Product, bool) {
	name = strings.TrimSpace(name)
	for _, p := range c.products {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Product{}, false
}

// Deals returns the first n products, which the storefront features as deals.
func (c *Catalog) Deals(n int) []Product {
	if n <= 0 || n > len(c.products) {
		n = len(c.products)
	}
	out := make([]Product, n)
	copy(out, c.products[:n])
	return out
}

// Search matches the query against name, color and tag, case-insensitively.
// Results keep catalog order and are capped at limit. A blank query matches nothing.
func (c *Catalog) Search(query string, limit int) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Product{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	out := []Product{}
	for _, p := range c.products {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Color), q) ||
			strings.Contains(strings.ToLower(p.Tag), q) {
			out = append(out, p)
		}
	}
	return out
}
