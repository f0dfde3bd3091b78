package checkout

import "github.com/angelmondragon/skt-storefront/internal/cart"

// Summary is the read model rendered on every checkout view.
type Summary struct {
	Step         Step          `json:"step"`
	Steps        []Step        `json:"steps"`
	Payment      PaymentMethod `json:"payment"`
	PromoCode    string        `json:"promo_code"`
	PromoMessage string        `json:"promo_message,omitempty"`
	Lines        []cart.Line   `json:"lines"`
	ItemCount    int           `json:"item_count"`
	Totals       Totals        `json:"totals"`
}

func (f *Flow) Summary(c *cart.Cart) Summary {
	return Summary{
		Step:         f.step,
		Steps:        Steps,
		Payment:      f.payment,
		PromoCode:    f.promoCode,
		PromoMessage: f.promoMessage,
		Lines:        c.Lines(),
		ItemCount:    c.ItemCount(),
		Totals:       f.Totals(c),
	}
}
