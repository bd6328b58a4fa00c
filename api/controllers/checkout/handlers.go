package checkout

import (
	"net/http"
	"strings"

	"github.com/rasanusantara/storefront/api/middleware"
	"github.com/rasanusantara/storefront/api/responses"
	"github.com/rasanusantara/storefront/api/validators"
	checkoutsvc "github.com/rasanusantara/storefront/internal/checkout"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
	"github.com/rasanusantara/storefront/pkg/logger"
)

// CheckoutFetch returns the checkout form with its quote.
func CheckoutFetch(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, logg)
		if !ok {
			return
		}
		view, err := svc.Get(r.Context(), sid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func CheckoutShipping(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, logg)
		if !ok {
			return
		}

		var payload shippingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.SetShippingInfo(r.Context(), sid, payload.toInfo())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CheckoutApplyCoupon validates a coupon against the current subtotal.
func CheckoutApplyCoupon(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, logg)
		if !ok {
			return
		}

		var payload couponRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.ApplyCoupon(r.Context(), sid, strings.TrimSpace(payload.Code))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func CheckoutRemoveCoupon(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, logg)
		if !ok {
			return
		}
		view, err := svc.RemoveCoupon(r.Context(), sid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func CheckoutPaymentMethod(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, logg)
		if !ok {
			return
		}

		var payload paymentMethodRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.SetPaymentMethod(r.Context(), sid, payload.toSelection())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CheckoutReset clears the form back to its initial state.
func CheckoutReset(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, logg)
		if !ok {
			return
		}
		if err := svc.Reset(r.Context(), sid); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// CheckoutSubmit places the order. The body is optional; a payment method in
// it overrides the stored one.
func CheckoutSubmit(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, logg)
		if !ok {
			return
		}

		var payload submitRequest
		if err := validators.DecodeOptionalJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := checkoutsvc.SubmitInput{}
		if payload.PaymentMethod != nil {
			selection := payload.PaymentMethod.toSelection()
			input.PaymentMethod = &selection
		}

		order, err := svc.Submit(r.Context(), sid, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithFields(r.Context(), map[string]any{
				"order_id": order.ID.String(),
				"total":    order.Total,
			})
			logg.Info(ctx, "checkout.submitted")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

func preflight(w http.ResponseWriter, r *http.Request, svc checkoutsvc.Service, logg *logger.Logger) (string, bool) {
	if svc == nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
		return "", false
	}
	sid, err := middleware.RequireSessionID(r)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return "", false
	}
	return sid, true
}
