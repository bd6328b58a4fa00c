package controllers

import (
	"net/http"

	"github.com/rasanusantara/storefront/api/middleware"
	"github.com/rasanusantara/storefront/api/responses"
	"github.com/rasanusantara/storefront/api/validators"
	"github.com/rasanusantara/storefront/internal/catalog"
	"github.com/rasanusantara/storefront/internal/wishlist"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
	"github.com/rasanusantara/storefront/pkg/logger"
)

const maxSearchLength = 100

var productSorts = map[string]bool{
	"":                       true,
	catalog.SortPriceLowHigh: true,
	catalog.SortPriceHighLow: true,
	catalog.SortNameAZ:       true,
	catalog.SortNameZA:       true,
}

type productList struct {
	Products   []catalog.Product `json:"products"`
	Categories []string          `json:"categories"`
	Total      int               `json:"total"`
}

type productDetail struct {
	Product    catalog.Product `json:"product"`
	InWishlist bool            `json:"inWishlist"`
}

// ListProducts searches the catalog.
func ListProducts(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseProductQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products := catalog.SearchProducts(query)
		responses.WriteSuccess(w, productList{
			Products:   products,
			Categories: catalog.Categories(),
			Total:      len(products),
		})
	}
}

// ProductDetail returns one product and whether the session saved it.
func ProductDetail(wishlists wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := validators.ParsePathInt(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, ok := catalog.FindProduct(productID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		detail := productDetail{Product: product}
		if wishlists != nil {
			if sid := middleware.SessionIDFromContext(r.Context()); sid != "" {
				saved, err := wishlists.Contains(r.Context(), sid, productID)
				if err != nil {
					responses.WriteError(r.Context(), logg, w, err)
					return
				}
				detail.InWishlist = saved
			}
		}

		responses.WriteSuccess(w, detail)
	}
}

// ListCoupons exposes the coupon catalog so the checkout page can show hints.
func ListCoupons() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"coupons": catalog.Coupons()})
	}
}

func parseProductQuery(r *http.Request) (catalog.ProductQuery, error) {
	q := r.URL.Query()
	query := catalog.ProductQuery{
		Text:     validators.SanitizeString(q.Get("q"), maxSearchLength),
		Category: validators.SanitizeString(q.Get("category"), maxSearchLength),
		Sort:     validators.SanitizeString(q.Get("sort"), maxSearchLength),
	}
	if !productSorts[query.Sort] {
		return query, pkgerrors.New(pkgerrors.CodeValidation, "unsupported sort").WithDetails(map[string]any{"field": "sort"})
	}

	var err error
	if query.InStockOnly, err = validators.ParseQueryBool(r, "inStock"); err != nil {
		return query, err
	}
	if query.NewOnly, err = validators.ParseQueryBool(r, "new"); err != nil {
		return query, err
	}
	if query.BestSeller, err = validators.ParseQueryBool(r, "bestSeller"); err != nil {
		return query, err
	}

	const maxPrice = 100_000_000
	minP, err := validators.ParseQueryInt(r, "minPrice", 0, 0, maxPrice)
	if err != nil {
		return query, err
	}
	maxP, err := validators.ParseQueryInt(r, "maxPrice", 0, 0, maxPrice)
	if err != nil {
		return query, err
	}
	if maxP > 0 && minP > maxP {
		return query, pkgerrors.New(pkgerrors.CodeValidation, "minPrice must not exceed maxPrice")
	}
	query.MinPrice, query.MaxPrice = int64(minP), int64(maxP)
	return query, nil
}
