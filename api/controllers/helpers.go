package controllers

import (
	"net/http"

	"github.com/angelmondragon/skt-storefront/api/middleware"
	"github.com/angelmondragon/skt-storefront/api/responses"
	"github.com/angelmondragon/skt-storefront/internal/forms"
	"github.com/angelmondragon/skt-storefront/internal/session"
	pkgerrors "github.com/angelmondragon/skt-storefront/pkg/errors"
	"github.com/angelmondragon/skt-storefront/pkg/logger"
	"github.com/angelmondragon/skt-storefront/pkg/metrics"
)

// requireSession writes an internal error when the Session middleware did
// not run, which only happens on a mis-wired router.
func requireSession(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (*session.Session, bool) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
		return nil, false
	}
	return sess, true
}

func formError(errs forms.Errors) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "form validation failed").
		WithDetails(map[string]string(errs))
}

// rejectForm writes the field errors and reports true when the form failed.
func rejectForm(w http.ResponseWriter, r *http.Request, logg *logger.Logger, m *metrics.Storefront, name string, errs forms.Errors) bool {
	if errs.Valid() {
		return false
	}
	m.IncFormRejection(name)
	responses.WriteError(r.Context(), logg, w, formError(errs))
	return true
}
