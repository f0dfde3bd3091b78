package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/skt-storefront/api/responses"
	"github.com/angelmondragon/skt-storefront/api/validators"
	"github.com/angelmondragon/skt-storefront/pkg/logger"
	"github.com/angelmondragon/skt-storefront/pkg/metrics"
)

type cartAddRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
	Size      string `json:"size" validate:"max=8"`
}

type cartQtyRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
	Size      string `json:"size" validate:"max=8"`
	Delta     int    `json:"delta" validate:"ne=0"`
}

func CartFetch(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, sess.Cart())
	}
}

func CartAddItem(m *metrics.Storefront, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		var body cartAddRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, err := sess.AddToCart(body.ProductID, body.Size)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		m.IncCartAction("add")
		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

// CartChangeQty adjusts a line by delta. Quantities never drop below one;
// removal goes through CartRemoveItem.
func CartChangeQty(m *metrics.Storefront, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		var body cartQtyRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view := sess.ChangeQty(body.ProductID, body.Size, body.Delta)
		m.IncCartAction("change_qty")
		responses.WriteSuccess(w, view)
	}
}

func CartRemoveItem(m *metrics.Storefront, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		productID := chi.URLParam(r, "productId")
		size := validators.SanitizeString(r.URL.Query().Get("size"), 8)
		view := sess.RemoveFromCart(productID, size)
		m.IncCartAction("remove")
		responses.WriteSuccess(w, view)
	}
}
