// Package session owns the per-visitor storefront state. Each Session is a
// single logical thread of control: every operation takes the session lock,
// and nothing is shared between sessions.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/angelmondragon/skt-storefront/internal/account"
	"github.com/angelmondragon/skt-storefront/internal/cart"
	"github.com/angelmondragon/skt-storefront/internal/catalog"
	"github.com/angelmondragon/skt-storefront/internal/checkout"
	"github.com/angelmondragon/skt-storefront/internal/location"
	pkgerrors "github.com/angelmondragon/skt-storefront/pkg/errors"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(raw string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(raw))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	}
	return "", false
}

// Options are shared by every session a Store creates.
type Options struct {
	Catalog       *catalog.Catalog
	Resolver      *location.Resolver
	Rules         checkout.Rules
	FeedbackDelay time.Duration
	RedirectDelay time.Duration
	Wishlist      []string
}

func (o Options) withDefaults() Options {
	if o.Catalog == nil {
		o.Catalog = catalog.Default()
	}
	if o.Resolver == nil {
		o.Resolver = location.Default()
	}
	if o.Rules == (checkout.Rules{}) {
		o.Rules = checkout.DefaultRules()
	}
	if o.FeedbackDelay <= 0 {
		o.FeedbackDelay = 2 * time.Second
	}
	if o.RedirectDelay <= 0 {
		o.RedirectDelay = 2 * time.Second
	}
	if o.Wishlist == nil {
		o.Wishlist = account.DefaultWishlist
	}
	return o
}

type Session struct {
	id       string
	catalog  *catalog.Catalog
	resolver *location.Resolver

	mu       sync.Mutex
	cart     cart.Cart
	flow     *checkout.Flow
	profile  *account.ProfileEditor
	wishlist *account.Wishlist
	reset    *account.PasswordReset
	location string
	theme    Theme
	signedIn bool
	email    string
	closed   bool
}

// New builds a standalone session. Most callers go through Store.
func New(id string, opts Options) *Session {
	opts = opts.withDefaults()
	return &Session{
		id:       id,
		catalog:  opts.Catalog,
		resolver: opts.Resolver,
		flow:     checkout.NewFlow(opts.Rules),
		profile:  account.NewProfileEditor(opts.FeedbackDelay),
		wishlist: account.NewWishlist(opts.Wishlist, opts.FeedbackDelay),
		reset:    account.NewPasswordReset(opts.RedirectDelay),
		theme:    ThemeLight,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Close stops every pending feedback timer. The session keeps answering
// reads afterwards, but no flash or redirect fires again.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.profile.Close()
	s.wishlist.Close()
	s.reset.Close()
}

type CartView struct {
	Lines     []cart.Line `json:"lines"`
	Total     int         `json:"total"`
	ItemCount int         `json:"item_count"`
}

func (s *Session) cartView() CartView {
	return CartView{
		Lines:     s.cart.Lines(),
		Total:     s.cart.Total(),
		ItemCount: s.cart.ItemCount(),
	}
}

func (s *Session) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartView()
}

// AddToCart adds one unit of the product. Unknown products are NOT_FOUND;
// unknown or unavailable sizes are VALIDATION_ERROR. A blank size means the
// default size.
func (s *Session) AddToCart(productID, size string) (CartView, error) {
	product, ok := s.catalog.Get(productID)
	if !ok {
		return CartView{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
			WithDetails(map[string]string{"product_id": productID})
	}
	if size == "" {
		size = catalog.DefaultSize
	}
	sz, ok := catalog.ParseSize(size)
	if !ok {
		return CartView{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown size").
			WithDetails(map[string]string{"size": size})
	}
	if !sz.Available {
		return CartView{}, pkgerrors.New(pkgerrors.CodeValidation, "size is unavailable").
			WithDetails(map[string]string{"size": sz.Label})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(product, sz.Label)
	return s.cartView(), nil
}

// ChangeQty never drops a line below one unit. A blank size means the
// default size.
func (s *Session) ChangeQty(productID, size string, delta int) CartView {
	if size == "" {
		size = catalog.DefaultSize
	}
	size = normalizeSize(size)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.ChangeQty(productID, size, delta)
	return s.cartView()
}

// RemoveFromCart drops the line for (productID, size), or every size of the
// product when size is blank.
func (s *Session) RemoveFromCart(productID, size string) CartView {
	size = normalizeSize(size)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID, size)
	return s.cartView()
}

func (s *Session) Checkout() checkout.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flow.Summary(&s.cart)
}

func (s *Session) AdvanceCheckout() checkout.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow.Advance()
	return s.flow.Summary(&s.cart)
}

func (s *Session) SelectPayment(method string) (checkout.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.flow.SelectPayment(method); err != nil {
		return checkout.Summary{}, err
	}
	return s.flow.Summary(&s.cart), nil
}

func (s *Session) ApplyPromo(code string) checkout.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow.ApplyPromo(code)
	return s.flow.Summary(&s.cart)
}

func (s *Session) PlaceOrder() (checkout.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.flow.PlaceOrder(); err != nil {
		return checkout.Summary{}, err
	}
	return s.flow.Summary(&s.cart), nil
}

func normalizeSize(size string) string {
	return strings.ToUpper(strings.TrimSpace(size))
}
