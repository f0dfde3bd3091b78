package controllers

import (
	"net/http"

	"github.com/angelmondragon/skt-storefront/api/responses"
	"github.com/angelmondragon/skt-storefront/api/validators"
	"github.com/angelmondragon/skt-storefront/internal/session"
	"github.com/angelmondragon/skt-storefront/pkg/logger"
)

type preferencesRequest struct {
	Theme    *string `json:"theme" validate:"omitempty,max=16"`
	Location *string `json:"location" validate:"omitempty,max=200"`
}

func PreferencesFetch(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, sess.Preferences())
	}
}

// PreferencesUpdate changes the theme and location picked in the header.
// Omitted fields keep their value.
func PreferencesUpdate(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		var body preferencesRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		prefs, err := sess.UpdatePreferences(session.PreferencesUpdate{Theme: body.Theme, Location: body.Location})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, prefs)
	}
}
