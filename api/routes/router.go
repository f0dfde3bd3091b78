package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/skt-storefront/api/controllers"
	"github.com/angelmondragon/skt-storefront/api/middleware"
	"github.com/angelmondragon/skt-storefront/api/responses"
	"github.com/angelmondragon/skt-storefront/internal/catalog"
	"github.com/angelmondragon/skt-storefront/internal/location"
	"github.com/angelmondragon/skt-storefront/internal/session"
	"github.com/angelmondragon/skt-storefront/pkg/config"
	pkgerrors "github.com/angelmondragon/skt-storefront/pkg/errors"
	"github.com/angelmondragon/skt-storefront/pkg/logger"
	"github.com/angelmondragon/skt-storefront/pkg/metrics"
)

// NewRouter wires every storefront route. metricsHandler is mounted at the
// configured metrics path when metrics are enabled and it is non-nil.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	cat *catalog.Catalog,
	resolver *location.Resolver,
	store *session.Store,
	stats *metrics.Storefront,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(stats),
		middleware.CORS(cfg.HTTP.CORSOrigins, cfg.Session.Header),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "method not allowed on route"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, cat, resolver, logg))
	})

	if cfg.Metrics.Enabled && metricsHandler != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.CatalogProducts(cat, logg))
			r.Get("/products/{productId}", controllers.CatalogProduct(cat, logg))
			r.Post("/products/{productId}/delivery", controllers.CatalogDelivery(cat, logg))
			r.Get("/deals", controllers.CatalogDeals(cat, cfg.Storefront.DealsLimit, logg))
			r.Get("/search", controllers.CatalogSearch(cat, cfg.Storefront.SearchLimit))
			r.Get("/colors", controllers.CatalogColors())
		})

		r.Route("/locations", func(r chi.Router) {
			r.Get("/countries", controllers.LocationCountries(resolver))
			r.Post("/resolve", controllers.LocationResolve(resolver, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(store, cfg.Session.Header, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(logg))
				r.Post("/items", controllers.CartAddItem(stats, logg))
				r.Patch("/items", controllers.CartChangeQty(stats, logg))
				r.Delete("/items/{productId}", controllers.CartRemoveItem(stats, logg))
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Get("/", controllers.CheckoutFetch(logg))
				r.Post("/advance", controllers.CheckoutAdvance(stats, logg))
				r.Put("/payment", controllers.CheckoutSelectPayment(logg))
				r.Post("/promo", controllers.CheckoutApplyPromo(logg))
				r.Post("/place", controllers.CheckoutPlaceOrder(stats, logg))
			})

			r.Route("/auth", func(r chi.Router) {
				r.Get("/", controllers.AuthStatus(logg))
				r.Post("/signup", controllers.AuthSignup(stats, logg))
				r.Post("/login", controllers.AuthLogin(stats, logg))
				r.Post("/logout", controllers.AuthLogout(logg))
			})

			r.Route("/account", func(r chi.Router) {
				r.Get("/profile", controllers.AccountProfile(logg))
				r.Put("/profile", controllers.AccountSaveProfile(stats, logg))
				r.Get("/wishlist", controllers.AccountWishlist(logg))
				r.Post("/wishlist/move", controllers.AccountWishlistMove(stats, logg))
				r.Route("/password-reset", func(r chi.Router) {
					r.Get("/", controllers.PasswordResetFetch(logg))
					r.Delete("/", controllers.PasswordResetRestart(logg))
					r.Post("/request", controllers.PasswordResetRequest(stats, logg))
					r.Post("/confirm", controllers.PasswordResetConfirm(stats, logg))
				})
			})

			r.Get("/preferences", controllers.PreferencesFetch(logg))
			r.Put("/preferences", controllers.PreferencesUpdate(logg))
		})
	})

	return r
}
