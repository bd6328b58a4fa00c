package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
)

type addItemBody struct {
	ProductID int `json:"productId" validate:"required,min=1"`
	Quantity  int `json:"quantity" validate:"omitempty,min=1,max=99"`
}

func TestDecodeJSONBody(t *testing.T) {
	var dest addItemBody
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"productId":3,"quantity":2}`))
	if err := DecodeJSONBody(req, &dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest.ProductID != 3 || dest.Quantity != 2 {
		t.Fatalf("unexpected decode %+v", dest)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	var dest addItemBody
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"productId":3,"price":1}`))
	err := DecodeJSONBody(req, &dest)
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyReportsFieldsByJSONName(t *testing.T) {
	var dest addItemBody
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quantity":120}`))
	err := DecodeJSONBody(req, &dest)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if details["productId"] != "is required" {
		t.Fatalf("unexpected productId detail %q", details["productId"])
	}
	if details["quantity"] != "must be at most 99" {
		t.Fatalf("unexpected quantity detail %q", details["quantity"])
	}
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=5", nil)
	got, err := ParseQueryInt(req, "limit", 20, 1, 100)
	if err != nil || got != 5 {
		t.Fatalf("expected 5, got %d %v", got, err)
	}

	got, err = ParseQueryInt(httptest.NewRequest(http.MethodGet, "/", nil), "limit", 20, 1, 100)
	if err != nil || got != 20 {
		t.Fatalf("expected default, got %d %v", got, err)
	}

	if _, err := ParseQueryInt(httptest.NewRequest(http.MethodGet, "/?limit=500", nil), "limit", 20, 1, 100); err == nil {
		t.Fatal("expected out of range error")
	}
}

func TestParseQueryBool(t *testing.T) {
	got, err := ParseQueryBool(httptest.NewRequest(http.MethodGet, "/?inStock=true", nil), "inStock")
	if err != nil || !got {
		t.Fatalf("expected true, got %v %v", got, err)
	}
	if _, err := ParseQueryBool(httptest.NewRequest(http.MethodGet, "/?inStock=maybe", nil), "inStock"); err == nil {
		t.Fatal("expected error for non boolean")
	}
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rc := chi.NewRouteContext()
	rc.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rc))
}

func TestParsePathInt(t *testing.T) {
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "itemId", "42")
	got, err := ParsePathInt(req, "itemId")
	if err != nil || got != 42 {
		t.Fatalf("expected 42, got %d %v", got, err)
	}

	req = withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "itemId", "abc")
	if _, err := ParsePathInt(req, "itemId"); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParsePathUUID(t *testing.T) {
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "orderId", "not-a-uuid")
	if _, err := ParsePathUUID(req, "orderId"); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeOptionalJSONBody(t *testing.T) {
	var dest addItemBody
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("  "))
	if err := DecodeOptionalJSONBody(req, &dest); err != nil {
		t.Fatalf("empty body should be accepted, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"productId":0}`))
	if err := DecodeOptionalJSONBody(req, &dest); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation to still run, got %v", err)
	}
}
