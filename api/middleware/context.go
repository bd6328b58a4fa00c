package middleware

import (
	"context"
	"net/http"

	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
)

type contextKey string

const ctxSessionID contextKey = "session_id"

// SessionIDFromContext returns the anonymous session bound to the request.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}

// WithSessionID injects the session identifier into the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSessionID, sessionID)
}

// RequireSessionID returns the request's session id or an UNAUTHORIZED error
// when the session middleware did not run.
func RequireSessionID(r *http.Request) (string, error) {
	sid := SessionIDFromContext(r.Context())
	if sid == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "session context missing")
	}
	return sid, nil
}
