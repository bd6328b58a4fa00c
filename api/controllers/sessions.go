package controllers

import (
	"net/http"
	"time"

	"github.com/rasanusantara/storefront/api/responses"
	pkgauth "github.com/rasanusantara/storefront/pkg/auth"
	"github.com/rasanusantara/storefront/pkg/config"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
	"github.com/rasanusantara/storefront/pkg/logger"
)

type sessionResponse struct {
	SessionID string    `json:"sessionId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// CreateSession opens an anonymous browsing session. The token is the only
// credential; all cart, checkout, wishlist and inbox state hangs off its id.
func CreateSession(cfg config.SessionConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		sid := pkgauth.NewSessionID()

		token, err := pkgauth.MintSessionToken(cfg, now, sid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "issue session token"))
			return
		}

		if logg != nil {
			logg.Info(logg.WithSessionID(r.Context(), sid), "session.created")
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, sessionResponse{
			SessionID: sid,
			Token:     token,
			ExpiresAt: now.Add(cfg.TokenTTL),
		})
	}
}
