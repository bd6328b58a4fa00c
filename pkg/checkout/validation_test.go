package checkout

import (
	"testing"

	"github.com/rasanusantara/storefront/pkg/enums"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
)

func TestValidateShipping(t *testing.T) {
	complete := []Field{{"name", "Sari"}, {"phone", "0812"}, {"email", " "}}
	if err := ValidateShipping(complete); err != nil {
		t.Fatalf("expected whitespace to count as present, got %v", err)
	}

	err := ValidateShipping([]Field{{"name", "Sari"}, {"city", ""}, {"postalCode", ""}})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if typed.Message() != MsgShippingIncomplete {
		t.Fatalf("unexpected message %q", typed.Message())
	}
	details, ok := typed.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected map details, got %T", typed.Details())
	}
	missing, ok := details["missing"].([]string)
	if !ok || len(missing) != 2 || missing[0] != "city" || missing[1] != "postalCode" {
		t.Fatalf("unexpected missing fields %v", details["missing"])
	}
}

func TestValidatePaymentSelection(t *testing.T) {
	cases := []struct {
		name    string
		kind    enums.CheckoutPaymentType
		bank    string
		wallet  string
		wantMsg string
	}{
		{name: "missing type", kind: enums.CheckoutPaymentTypeNone, wantMsg: MsgPaymentRequired},
		{name: "bank missing", kind: enums.CheckoutPaymentTypeBankTransfer, wantMsg: MsgBankRequired},
		{name: "wallet missing", kind: enums.CheckoutPaymentTypeEWallet, bank: "bca", wantMsg: MsgWalletRequired},
		{name: "bad bank", kind: enums.CheckoutPaymentTypeBankTransfer, bank: "bri", wantMsg: `unsupported bank "bri"`},
		{name: "unknown type", kind: "cash", wantMsg: `unsupported payment method "cash"`},
		{name: "bank ok", kind: enums.CheckoutPaymentTypeBankTransfer, bank: "bca"},
		{name: "wallet ok", kind: enums.CheckoutPaymentTypeEWallet, wallet: "gopay"},
		{name: "cod ok", kind: enums.CheckoutPaymentTypeCOD},
	}
	for _, tc := range cases {
		err := ValidatePaymentSelection(tc.kind, tc.bank, tc.wallet)
		if tc.wantMsg == "" {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		typed := pkgerrors.As(err)
		if typed == nil || typed.Message() != tc.wantMsg {
			t.Fatalf("%s: expected %q, got %v", tc.name, tc.wantMsg, err)
		}
	}
}

func TestValidateStock(t *testing.T) {
	ok := []StockValidationInput{{ProductID: 1, Stock: 5, Requested: 5}}
	if err := ValidateStock(ok); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err := ValidateStock([]StockValidationInput{
		{ProductID: 1, ProductName: "Kue Lapis Legit Premium", Stock: 15, Requested: 16},
		{ProductID: 2, Stock: 3, Requested: 1},
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
	details := typed.Details().(map[string]any)
	violations := details["violations"].([]StockViolationDetail)
	if len(violations) != 1 || violations[0].Available != 15 {
		t.Fatalf("unexpected violations %+v", violations)
	}
}
