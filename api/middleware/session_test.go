package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rasanusantara/storefront/internal/session"
	pkgauth "github.com/rasanusantara/storefront/pkg/auth"
	"github.com/rasanusantara/storefront/pkg/config"
)

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:   "test-secret",
		Issuer:   "rasa-nusantara",
		TokenTTL: time.Hour,
	}
}

func TestSessionMiddlewareInjectsSessionID(t *testing.T) {
	cfg := testSessionConfig()
	token, err := pkgauth.MintSessionToken(cfg, time.Now(), "sess-1")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	locks := session.NewLocks()
	var seen string
	handler := Session(cfg, locks, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
		if locks.Len() != 1 {
			t.Errorf("expected the session lock to be held")
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if seen != "sess-1" {
		t.Fatalf("expected sess-1, got %q", seen)
	}
	if locks.Len() != 0 {
		t.Fatalf("expected lock released, %d entries left", locks.Len())
	}
}

func TestSessionMiddlewareRejectsMissingAndInvalidTokens(t *testing.T) {
	cfg := testSessionConfig()
	handler := Session(cfg, nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	for _, header := range []string{"", "Bearer", "Bearer not-a-jwt", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, resp.Code)
		}
	}
}

func TestSessionMiddlewareRejectsForeignSecret(t *testing.T) {
	other := testSessionConfig()
	other.Secret = "another-secret"
	token, err := pkgauth.MintSessionToken(other, time.Now(), "sess-1")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	handler := Session(testSessionConfig(), nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
