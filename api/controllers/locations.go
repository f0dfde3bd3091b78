package controllers

import (
	"net/http"

	"github.com/angelmondragon/skt-storefront/api/responses"
	"github.com/angelmondragon/skt-storefront/api/validators"
	"github.com/angelmondragon/skt-storefront/internal/location"
	"github.com/angelmondragon/skt-storefront/pkg/logger"
)

func LocationCountries(resolver *location.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := validators.QueryString(r, "q", maxQueryLen)
		responses.WriteSuccess(w, map[string]any{"countries": resolver.Filter(q)})
	}
}

type resolveRequest struct {
	Location string `json:"location" validate:"max=200"`
	Address  string `json:"address" validate:"max=500"`
}

type resolveResponse struct {
	CountryCode string `json:"country_code,omitempty"`
	Found       bool   `json:"found"`
}

func LocationResolve(resolver *location.Resolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body resolveRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		code, ok := resolver.ResolveCountryCode(body.Location, body.Address)
		responses.WriteSuccess(w, resolveResponse{CountryCode: code, Found: ok})
	}
}
