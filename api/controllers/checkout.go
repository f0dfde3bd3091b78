package controllers

import (
	"net/http"

	"github.com/angelmondragon/skt-storefront/api/responses"
	"github.com/angelmondragon/skt-storefront/api/validators"
	"github.com/angelmondragon/skt-storefront/internal/checkout"
	"github.com/angelmondragon/skt-storefront/pkg/logger"
	"github.com/angelmondragon/skt-storefront/pkg/metrics"
)

type checkoutResponse struct {
	checkout.Summary
	PaymentOptions []checkout.PaymentOption `json:"payment_options"`
}

func newCheckoutResponse(sum checkout.Summary) checkoutResponse {
	return checkoutResponse{Summary: sum, PaymentOptions: checkout.PaymentOptions}
}

type paymentRequest struct {
	Method string `json:"method" validate:"required,max=16"`
}

type promoRequest struct {
	Code string `json:"code" validate:"max=64"`
}

type orderPlacedResponse struct {
	checkoutResponse
	Placed bool `json:"placed"`
}

func CheckoutFetch(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, newCheckoutResponse(sess.Checkout()))
	}
}

// CheckoutAdvance moves to the next step without checking the shipping
// fields. At confirmation it stays put.
func CheckoutAdvance(m *metrics.Storefront, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		sum := sess.AdvanceCheckout()
		m.IncCheckoutStep(sum.Step.String())
		responses.WriteSuccess(w, newCheckoutResponse(sum))
	}
}

func CheckoutSelectPayment(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		var body paymentRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		sum, err := sess.SelectPayment(body.Method)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCheckoutResponse(sum))
	}
}

// CheckoutApplyPromo always succeeds; the outcome is in promo_message.
func CheckoutApplyPromo(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		var body promoRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCheckoutResponse(sess.ApplyPromo(body.Code)))
	}
}

func CheckoutPlaceOrder(m *metrics.Storefront, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		sum, err := sess.PlaceOrder()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		m.IncCheckoutStep("placed")
		if logg != nil {
			logg.Info(logg.WithFields(r.Context(), map[string]any{
				"grand_total": sum.Totals.GrandTotal,
				"item_count":  sum.ItemCount,
				"payment":     string(sum.Payment),
			}), "checkout.order_placed")
		}
		responses.WriteSuccess(w, orderPlacedResponse{checkoutResponse: newCheckoutResponse(sum), Placed: true})
	}
}
