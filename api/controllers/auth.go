package controllers

import (
	"net/http"

	"github.com/angelmondragon/skt-storefront/api/responses"
	"github.com/angelmondragon/skt-storefront/api/validators"
	"github.com/angelmondragon/skt-storefront/internal/forms"
	"github.com/angelmondragon/skt-storefront/pkg/logger"
	"github.com/angelmondragon/skt-storefront/pkg/metrics"
)

// AuthSignup validates the signup form and signs the session in. Nothing is
// persisted and no account is created.
func AuthSignup(m *metrics.Storefront, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		var body forms.SignupFields
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, errs := sess.SignUp(body)
		if rejectForm(w, r, logg, m, "signup", errs) {
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// AuthLogin checks the form shape only; any well-formed credentials sign in.
func AuthLogin(m *metrics.Storefront, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		var body forms.LoginFields
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, errs := sess.LogIn(body)
		if rejectForm(w, r, logg, m, "login", errs) {
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func AuthLogout(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, sess.SignOut())
	}
}

func AuthStatus(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, sess.Auth())
	}
}
