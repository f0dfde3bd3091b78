package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/skt-storefront/api/responses"
	"github.com/angelmondragon/skt-storefront/api/validators"
	"github.com/angelmondragon/skt-storefront/internal/catalog"
	pkgerrors "github.com/angelmondragon/skt-storefront/pkg/errors"
	"github.com/angelmondragon/skt-storefront/pkg/logger"
	"github.com/angelmondragon/skt-storefront/pkg/pagination"
)

const maxQueryLen = 100

type productResponse struct {
	catalog.Product
	FinalPrice int `json:"final_price"`
	Savings    int `json:"savings"`
}

func newProductResponse(p catalog.Product) productResponse {
	return productResponse{Product: p, FinalPrice: p.FinalPrice(), Savings: p.Savings()}
}

func newProductList(products []catalog.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, newProductResponse(p))
	}
	return out
}

type productDetailResponse struct {
	productResponse
	Sizes           []catalog.Size `json:"sizes"`
	DefaultSize     string         `json:"default_size"`
	RecommendColors []string       `json:"recommended_colors"`
}

type productPage struct {
	Products   []productResponse `json:"products"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

func CatalogProducts(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		params := pagination.Params{Limit: limit, Cursor: validators.QueryString(r, "cursor", maxQueryLen)}
		products, next, err := pagination.Page(cat.List(), params, func(p catalog.Product) string { return p.ID })
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor").WithDetails(map[string]any{"field": "cursor"}))
			return
		}
		responses.WriteSuccess(w, productPage{Products: newProductList(products), NextCursor: next})
	}
}

func CatalogProduct(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "productId")
		product, ok := cat.Get(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, productDetailResponse{
			productResponse: newProductResponse(product),
			Sizes:           catalog.Sizes(),
			DefaultSize:     catalog.DefaultSize,
			RecommendColors: catalog.ColorRecommendations,
		})
	}
}

// CatalogDeals lists the featured deals. limit caps the default count; the
// client may ask for fewer.
func CatalogDeals(cat *catalog.Catalog, limit int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := validators.ParseQueryInt(r, "limit", limit, 1, len(cat.List()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"products": newProductList(cat.Deals(n))})
	}
}

func CatalogSearch(cat *catalog.Catalog, limit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := validators.QueryString(r, "q", maxQueryLen)
		responses.WriteSuccess(w, map[string]any{
			"query":    q,
			"products": newProductList(cat.Search(q, limit)),
		})
	}
}

func CatalogColors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := validators.QueryString(r, "q", maxQueryLen)
		responses.WriteSuccess(w, map[string]any{
			"colors":      catalog.FilterColors(q),
			"recommended": catalog.ColorRecommendations,
		})
	}
}

type deliveryRequest struct {
	Pincode string `json:"pincode" validate:"max=20"`
}

type deliveryResponse struct {
	ProductID string `json:"product_id"`
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

func CatalogDelivery(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "productId")
		if _, ok := cat.Get(id); !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		var body deliveryRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		msg, ok := catalog.CheckDelivery(body.Pincode)
		responses.WriteSuccess(w, deliveryResponse{ProductID: id, Available: ok, Message: msg})
	}
}
