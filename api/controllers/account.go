package controllers

import (
	"net/http"

	"github.com/angelmondragon/skt-storefront/api/responses"
	"github.com/angelmondragon/skt-storefront/api/validators"
	"github.com/angelmondragon/skt-storefront/internal/forms"
	"github.com/angelmondragon/skt-storefront/internal/session"
	"github.com/angelmondragon/skt-storefront/pkg/logger"
	"github.com/angelmondragon/skt-storefront/pkg/metrics"
)

func AccountProfile(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, sess.Profile())
	}
}

// AccountSaveProfile returns the saved profile with the "Profile saved."
// message, which clears itself after the feedback delay.
func AccountSaveProfile(m *metrics.Storefront, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		var body forms.ProfileFields
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, errs := sess.SaveProfile(body)
		if rejectForm(w, r, logg, m, "profile", errs) {
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func AccountWishlist(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, sess.Wishlist())
	}
}

type wishlistMoveRequest struct {
	Name string `json:"name" validate:"required,max=128"`
}

type wishlistMoveResponse struct {
	Wishlist session.WishlistView `json:"wishlist"`
	Cart     session.CartView     `json:"cart"`
}

func AccountWishlistMove(m *metrics.Storefront, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		var body wishlistMoveRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		wl, c, moved := sess.MoveToCart(body.Name)
		if moved {
			m.IncCartAction("wishlist_move")
		}
		responses.WriteSuccess(w, wishlistMoveResponse{Wishlist: wl, Cart: c})
	}
}

func PasswordResetFetch(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, sess.PasswordReset())
	}
}

type resetRequestBody struct {
	Email string `json:"email" validate:"max=254"`
}

func PasswordResetRequest(m *metrics.Storefront, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		var body resetRequestBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, errs, err := sess.RequestPasswordReset(body.Email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if rejectForm(w, r, logg, m, "reset_request", errs) {
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// PasswordResetConfirm finishes the flow. redirect_to_login turns true on
// later reads once the redirect delay passes.
func PasswordResetConfirm(m *metrics.Storefront, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		var body forms.ResetFields
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, errs, err := sess.ConfirmPasswordReset(body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if rejectForm(w, r, logg, m, "reset", errs) {
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func PasswordResetRestart(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, sess.RestartPasswordReset())
	}
}
