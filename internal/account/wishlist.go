package account

import (
	"fmt"
	"time"

	"github.com/angelmondragon/skt-storefront/internal/cart"
	"github.com/angelmondragon/skt-storefront/internal/catalog"
	"github.com/angelmondragon/skt-storefront/pkg/feedback"
)

// DefaultWishlist seeds every new session.
var DefaultWishlist = []string{
	"SKT Air Knit Hoodie",
	"SKT Utility Jacket",
	"SKT Core Tee",
}

func MovedMessage(name string) string {
	return fmt.Sprintf("Moved %q to cart.", name)
}

// Wishlist keeps product names in the order they were saved.
type Wishlist struct {
	items []string
	moved *feedback.Flash
}

func NewWishlist(items []string, flashDelay time.Duration) *Wishlist {
	return &Wishlist{
		items: append([]string(nil), items...),
		moved: feedback.NewFlash(flashDelay),
	}
}

func (w *Wishlist) Items() []string {
	return append([]string{}, w.items...)
}

func (w *Wishlist) Contains(name string) bool {
	return w.index(name) >= 0
}

// MoveToCart drops name from the wishlist and adds the matching catalog
// product to c in the default size. It reports false and changes nothing when
// name is not on the list. A name the catalog no longer carries still leaves
// the wishlist, but nothing reaches the cart.
func (w *Wishlist) MoveToCart(name string, cat *catalog.Catalog, c *cart.Cart) bool {
	idx := w.index(name)
	if idx < 0 {
		return false
	}
	w.items = append(w.items[:idx], w.items[idx+1:]...)

	if cat != nil && c != nil {
		if product, ok := cat.FindByName(name); ok {
			c.Add(product, catalog.DefaultSize)
		}
	}
	w.moved.Show(MovedMessage(name))
	return true
}

func (w *Wishlist) Message() string {
	return w.moved.Message()
}

func (w *Wishlist) Close() {
	w.moved.Close()
}

func (w *Wishlist) index(name string) int {
	for i, item := range w.items {
		if item == name {
			return i
		}
	}
	return -1
}
