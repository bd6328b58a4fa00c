package middleware

import (
	"net/http"
	"strings"

	"github.com/rasanusantara/storefront/api/responses"
	"github.com/rasanusantara/storefront/internal/session"
	pkgauth "github.com/rasanusantara/storefront/pkg/auth"
	"github.com/rasanusantara/storefront/pkg/config"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
	"github.com/rasanusantara/storefront/pkg/logger"
)

// Session validates the bearer session token and seeds the request context
// with its session id. Requests of one session run one at a time for the
// whole handler, so read-modify-write cycles on the session blobs never
// interleave.
func Session(cfg config.SessionConfig, locks *session.Locks, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session token"))
				return
			}

			claims, err := pkgauth.ParseSessionToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid session token"))
				return
			}

			ctx := WithSessionID(r.Context(), claims.SessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, claims.SessionID)
			}

			if locks != nil {
				unlock, err := locks.Lock(ctx, claims.SessionID)
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeCanceled, err, "request canceled"))
					return
				}
				defer unlock()
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(raw) > 7 && strings.EqualFold(raw[:7], "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return ""
}
