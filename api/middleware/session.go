package middleware

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/skt-storefront/internal/session"
	"github.com/angelmondragon/skt-storefront/pkg/logger"
)

// Session attaches the caller's storefront session. A missing, unknown or
// expired id in header gets a fresh session, and the response always echoes
// the id in use.
func Session(store *session.Store, header string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			sess, created := store.Resolve(strings.TrimSpace(r.Header.Get(header)))

			w.Header().Set(header, sess.ID())

			ctx = WithSession(ctx, sess)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sess.ID())
				if created {
					logg.Debug(ctx, "session.issued")
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
