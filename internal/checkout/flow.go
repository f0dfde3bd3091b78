// Package checkout models the storefront checkout: a forward-only step
// machine (address, payment, confirmation) with the payment method choice
// and a single flat promo code layered over the cart totals.
package checkout

import (
	"fmt"
	"strings"

	"github.com/angelmondragon/skt-storefront/internal/cart"
	pkgerrors "github.com/angelmondragon/skt-storefront/pkg/errors"
)

type Step string

const (
	StepAddress      Step = "address"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// Steps lists the checkout steps in order.
var Steps = []Step{StepAddress, StepPayment, StepConfirmation}

// Next returns the step after s. The terminal step returns itself.
func (s Step) Next() Step {
	switch s {
	case StepAddress:
		return StepPayment
	case StepPayment:
		return StepConfirmation
	}
	return StepConfirmation
}

func (s Step) IsTerminal() bool {
	return s == StepConfirmation
}

func (s Step) String() string {
	return string(s)
}

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentPayPal PaymentMethod = "paypal"
	PaymentApple  PaymentMethod = "apple"
)

// PaymentOption pairs a method with its display label.
type PaymentOption struct {
	ID    PaymentMethod `json:"id"`
	Label string        `json:"label"`
}

var PaymentOptions = []PaymentOption{
	{ID: PaymentCard, Label: "Credit / debit card"},
	{ID: PaymentPayPal, Label: "PayPal"},
	{ID: PaymentApple, Label: "Apple Pay"},
}

func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	for _, opt := range PaymentOptions {
		if opt.ID == m {
			return m, true
		}
	}
	return "", false
}

const (
	MsgPromoUnrecognized = "Promo code not recognized."
	MsgPromoEmpty        = "Enter a promo code to apply."
)

// PromoAppliedMessage is shown when the promo code is accepted.
func PromoAppliedMessage(amount int) string {
	return fmt.Sprintf("Promo applied. $%d off your order.", amount)
}

// Rules are the storefront's shipping and promo constants.
type Rules struct {
	ShippingFee int
	PromoCode   string
	PromoAmount int
}

func DefaultRules() Rules {
	return Rules{ShippingFee: 12, PromoCode: "skt10", PromoAmount: 10}
}

// Totals are derived on demand from the cart and the current promo code.
type Totals struct {
	Subtotal   int `json:"subtotal"`
	Shipping   int `json:"shipping"`
	Discount   int `json:"discount"`
	GrandTotal int `json:"grand_total"`
}

// Flow is one checkout session. The zero value is not usable; call NewFlow.
type Flow struct {
	rules        Rules
	step         Step
	payment      PaymentMethod
	promoCode    string
	promoMessage string
}

func NewFlow(rules Rules) *Flow {
	f := &Flow{rules: rules}
	f.Reset()
	return f
}

// Reset starts a fresh checkout session.
func (f *Flow) Reset() {
	f.step = StepAddress
	f.payment = PaymentCard
	f.promoCode = ""
	f.promoMessage = ""
}

func (f *Flow) Step() Step {
	return f.step
}

func (f *Flow) Payment() PaymentMethod {
	return f.payment
}

func (f *Flow) PromoCode() string {
	return f.promoCode
}

func (f *Flow) PromoMessage() string {
	return f.promoMessage
}

func (f *Flow) Rules() Rules {
	return f.rules
}

// PromoRecognized reports whether the stored code earns the discount.
func (f *Flow) PromoRecognized() bool {
	return f.matchesPromo(f.promoCode)
}

func (f *Flow) matchesPromo(code string) bool {
	return strings.ToLower(strings.TrimSpace(code)) == strings.ToLower(f.rules.PromoCode)
}

// Advance moves one step forward. Shipping details are not checked here and
// the confirmation step stays put.
func (f *Flow) Advance() Step {
	f.step = f.step.Next()
	return f.step
}

func (f *Flow) SelectPayment(raw string) error {
	method, ok := ParsePaymentMethod(raw)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeValidation, "unsupported payment method").
			WithDetails(map[string]string{"method": raw})
	}
	f.payment = method
	return nil
}

// SetPromoCode records the typed code without producing a message.
func (f *Flow) SetPromoCode(code string) {
	f.promoCode = code
}

// ApplyPromo records the code and returns the feedback message for it.
func (f *Flow) ApplyPromo(code string) string {
	f.promoCode = code
	switch {
	case f.matchesPromo(code):
		f.promoMessage = PromoAppliedMessage(f.rules.PromoAmount)
	case strings.TrimSpace(code) != "":
		f.promoMessage = MsgPromoUnrecognized
	default:
		f.promoMessage = MsgPromoEmpty
	}
	return f.promoMessage
}

// Discount is the flat promo amount when the stored code matches, else 0.
func (f *Flow) Discount() int {
	if f.matchesPromo(f.promoCode) {
		return f.rules.PromoAmount
	}
	return 0
}

// Totals computes max(subtotal + shipping - discount, 0) for the given cart.
func (f *Flow) Totals(c *cart.Cart) Totals {
	subtotal := c.Total()
	shipping := 0
	if !c.IsEmpty() {
		shipping = f.rules.ShippingFee
	}
	discount := f.Discount()
	return Totals{
		Subtotal:   subtotal,
		Shipping:   shipping,
		Discount:   discount,
		GrandTotal: max(subtotal+shipping-discount, 0),
	}
}

// PlaceOrder acknowledges the order. It has no effect beyond the confirmation step check.
func (f *Flow) PlaceOrder() error {
	if !f.step.IsTerminal() {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "order can only be placed from the confirmation step").
			WithDetails(map[string]any{"step": f.step})
	}
	return nil
}
