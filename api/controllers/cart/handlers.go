package cart

import (
	"context"
	"net/http"

	"github.com/rasanusantara/storefront/api/middleware"
	"github.com/rasanusantara/storefront/api/responses"
	"github.com/rasanusantara/storefront/api/validators"
	cartsvc "github.com/rasanusantara/storefront/internal/cart"
	"github.com/rasanusantara/storefront/internal/pricing"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
	"github.com/rasanusantara/storefront/pkg/logger"
)

// Quoter prices the session cart with the checkout's applied coupon.
type Quoter interface {
	Quote(ctx context.Context, sessionID string) (pricing.Quote, error)
}

// CartFetch returns the session cart and its quote.
func CartFetch(svc cartsvc.Service, quoter Quoter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, quoter, logg)
		if !ok {
			return
		}

		c, err := svc.Get(r.Context(), sid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		writeView(w, r, quoter, logg, sid, c, http.StatusOK)
	}
}

// CartAddItem adds a catalog product, merging with an existing line.
func CartAddItem(svc cartsvc.Service, quoter Quoter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, quoter, logg)
		if !ok {
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c, err := svc.AddItem(r.Context(), sid, cartsvc.AddItemInput{
			ProductID: payload.ProductID,
			Quantity:  payload.Quantity,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		writeView(w, r, quoter, logg, sid, c, http.StatusCreated)
	}
}

// CartUpdateItem sets a line's quantity; zero removes it.
func CartUpdateItem(svc cartsvc.Service, quoter Quoter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, quoter, logg)
		if !ok {
			return
		}

		itemID, err := validators.ParsePathInt(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c, err := svc.UpdateQuantity(r.Context(), sid, itemID, *payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		writeView(w, r, quoter, logg, sid, c, http.StatusOK)
	}
}

func CartRemoveItem(svc cartsvc.Service, quoter Quoter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, quoter, logg)
		if !ok {
			return
		}

		itemID, err := validators.ParsePathInt(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c, err := svc.RemoveItem(r.Context(), sid, itemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		writeView(w, r, quoter, logg, sid, c, http.StatusOK)
	}
}

func CartClear(svc cartsvc.Service, quoter Quoter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, quoter, logg)
		if !ok {
			return
		}

		if err := svc.Clear(r.Context(), sid); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

func preflight(w http.ResponseWriter, r *http.Request, svc cartsvc.Service, quoter Quoter, logg *logger.Logger) (string, bool) {
	if svc == nil || quoter == nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
		return "", false
	}
	sid, err := middleware.RequireSessionID(r)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return "", false
	}
	return sid, true
}

func writeView(w http.ResponseWriter, r *http.Request, quoter Quoter, logg *logger.Logger, sid string, c *cartsvc.Cart, status int) {
	quote, err := quoter.Quote(r.Context(), sid)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}
	responses.WriteSuccessStatus(w, status, newCartView(c, quote))
}
