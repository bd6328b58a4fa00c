package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rasanusantara/storefront/api/middleware"
	"github.com/rasanusantara/storefront/internal/wishlist"
	pkgauth "github.com/rasanusantara/storefront/pkg/auth"
	"github.com/rasanusantara/storefront/pkg/config"
)

type pingerFunc func(context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{Secret: "controllers-secret", Issuer: "rasa-nusantara", TokenTTL: time.Hour}
}

func TestHealthReady(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "test"}}
	ok := pingerFunc(func(context.Context) error { return nil })
	down := pingerFunc(func(context.Context) error { return errors.New("dial tcp: refused") })

	tests := []struct {
		name   string
		db     Pinger
		redis  Pinger
		status int
	}{
		{name: "all up", db: ok, redis: ok, status: http.StatusOK},
		{name: "redis down", db: ok, redis: down, status: http.StatusServiceUnavailable},
		{name: "db missing", db: nil, redis: ok, status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		resp := httptest.NewRecorder()
		HealthReady(cfg, nil, tt.db, tt.redis).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		if resp.Code != tt.status {
			t.Fatalf("%s: expected %d got %d", tt.name, tt.status, resp.Code)
		}
		if got := resp.Header().Get(envHeader); got != "test" {
			t.Fatalf("%s: expected env header, got %q", tt.name, got)
		}
	}
}

func TestCreateSessionIssuesParseableToken(t *testing.T) {
	cfg := testSessionConfig()

	resp := httptest.NewRecorder()
	CreateSession(cfg, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	var envelope struct {
		Data sessionResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	claims, err := pkgauth.ParseSessionToken(cfg, envelope.Data.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.SessionID != envelope.Data.SessionID {
		t.Fatalf("token carries %q, response says %q", claims.SessionID, envelope.Data.SessionID)
	}
}

func TestCreateSessionWithoutSecretFails(t *testing.T) {
	resp := httptest.NewRecorder()
	CreateSession(config.SessionConfig{}, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/", nil))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}

type stubWishlist struct {
	toggled []int
}

func (s *stubWishlist) Get(context.Context, string) (*wishlist.Wishlist, error) {
	return wishlist.New(), nil
}

func (s *stubWishlist) Toggle(_ context.Context, _ string, productID int) (wishlist.ToggleResult, error) {
	s.toggled = append(s.toggled, productID)
	return wishlist.ToggleResult{InWishlist: true, Count: len(s.toggled)}, nil
}

func (s *stubWishlist) Contains(context.Context, string, int) (bool, error) {
	return false, nil
}

func (s *stubWishlist) Clear(context.Context, string) error {
	return nil
}

func TestWishlistToggle(t *testing.T) {
	svc := &stubWishlist{}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"productId":2}`))
	req = req.WithContext(middleware.WithSessionID(req.Context(), "sid-1"))
	resp := httptest.NewRecorder()
	WishlistToggle(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if len(svc.toggled) != 1 || svc.toggled[0] != 2 {
		t.Fatalf("unexpected toggles %v", svc.toggled)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"productId":0}`))
	req = req.WithContext(middleware.WithSessionID(req.Context(), "sid-1"))
	resp = httptest.NewRecorder()
	WishlistToggle(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing product id, got %d", resp.Code)
	}
}
