package payments

import (
	"net/http"

	"github.com/rasanusantara/storefront/api/middleware"
	"github.com/rasanusantara/storefront/api/responses"
	"github.com/rasanusantara/storefront/api/validators"
	"github.com/rasanusantara/storefront/internal/payment"
	"github.com/rasanusantara/storefront/pkg/enums"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
	"github.com/rasanusantara/storefront/pkg/logger"
)

type initiateRequest struct {
	Method   enums.PaymentMethod `json:"method" validate:"required"`
	Provider string              `json:"provider" validate:"max=32"`
}

type currentResponse struct {
	Payment *payment.Details `json:"payment"`
}

type historyResponse struct {
	Payments []payment.Details `json:"payments"`
}

// PaymentInitiate opens a gateway transaction for the session cart total.
func PaymentInitiate(svc payment.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, logg)
		if !ok {
			return
		}

		var payload initiateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		details, err := svc.Initiate(r.Context(), sid, payment.InitiateInput{
			Method:   payload.Method,
			Provider: payload.Provider,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithFields(r.Context(), map[string]any{
				"transaction_id": details.TransactionID,
				"method":         string(details.Method),
				"amount":         details.Amount,
			})
			logg.Info(ctx, "payment.initiated")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, details)
	}
}

// PaymentStatus polls the gateway for one of the session's transactions.
func PaymentStatus(svc payment.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, logg)
		if !ok {
			return
		}

		transactionID, err := validators.ParsePathString(r, "transactionId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CheckStatus(r.Context(), sid, transactionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func PaymentCurrent(svc payment.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, logg)
		if !ok {
			return
		}
		current, err := svc.Current(r.Context(), sid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, currentResponse{Payment: current})
	}
}

func PaymentClearCurrent(svc payment.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, logg)
		if !ok {
			return
		}
		if err := svc.ClearCurrent(r.Context(), sid); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// PaymentHistory lists every payment the session opened, oldest first.
func PaymentHistory(svc payment.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := preflight(w, r, svc, logg)
		if !ok {
			return
		}
		history, err := svc.History(r.Context(), sid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, historyResponse{Payments: history})
	}
}

func preflight(w http.ResponseWriter, r *http.Request, svc payment.Service, logg *logger.Logger) (string, bool) {
	if svc == nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment service unavailable"))
		return "", false
	}
	sid, err := middleware.RequireSessionID(r)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return "", false
	}
	return sid, true
}
