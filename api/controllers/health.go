package controllers

import (
	"net/http"

	"github.com/angelmondragon/skt-storefront/api/responses"
	"github.com/angelmondragon/skt-storefront/internal/catalog"
	"github.com/angelmondragon/skt-storefront/internal/location"
	"github.com/angelmondragon/skt-storefront/pkg/config"
	pkgerrors "github.com/angelmondragon/skt-storefront/pkg/errors"
	"github.com/angelmondragon/skt-storefront/pkg/logger"
)

const envHeader = "X-SKT-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready once the catalog and country list are loaded.
func HealthReady(cfg *config.Config, cat *catalog.Catalog, resolver *location.Resolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		if cat == nil || len(cat.List()) == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog not loaded"))
			return
		}
		if resolver == nil || len(resolver.Countries()) == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "country list not loaded"))
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"status":    "ready",
			"products":  len(cat.List()),
			"countries": len(resolver.Countries()),
		})
	}
}
