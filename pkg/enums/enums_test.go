package enums

import "testing"

func TestPaymentStatusClassification(t *testing.T) {
	cases := []struct {
		status    PaymentStatus
		terminal  bool
		retryable bool
	}{
		{PaymentStatusPending, false, false},
		{PaymentStatusProcessing, false, false},
		{PaymentStatusSuccess, true, false},
		{PaymentStatusFailed, true, true},
		{PaymentStatusExpired, true, true},
	}
	for _, tc := range cases {
		if got := tc.status.IsTerminal(); got != tc.terminal {
			t.Fatalf("%s terminal: expected %v got %v", tc.status, tc.terminal, got)
		}
		if got := tc.status.Retryable(); got != tc.retryable {
			t.Fatalf("%s retryable: expected %v got %v", tc.status, tc.retryable, got)
		}
	}
	if len(PaymentStatuses()) != 5 {
		t.Fatalf("expected five statuses")
	}
}

func TestParseHelpers(t *testing.T) {
	if got, err := ParseCouponType(" Percentage "); err != nil || got != CouponTypePercentage {
		t.Fatalf("expected percentage, got %q err=%v", got, err)
	}
	if _, err := ParseCouponType("bogus"); err == nil {
		t.Fatalf("expected error for unknown coupon type")
	}
	if _, err := ParsePaymentMethod("bank_transfer"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParsePaymentMethod("bank-transfer"); err == nil {
		t.Fatalf("checkout spelling should not parse as gateway method")
	}
	if _, err := ParseCheckoutPaymentType(""); err == nil {
		t.Fatalf("empty checkout payment type should not parse")
	}
	if CheckoutPaymentTypeNone.IsValid() {
		t.Fatalf("empty checkout payment type should be invalid")
	}
}

func TestProviders(t *testing.T) {
	if !BankMandiri.IsValid() || Bank("bri").IsValid() {
		t.Fatalf("unexpected bank validity")
	}
	if !WalletOVO.IsValid() || Wallet("paypal").IsValid() {
		t.Fatalf("unexpected wallet validity")
	}
	if !PaymentMethodBankTransfer.RequiresProvider() || PaymentMethodEWallet.RequiresProvider() {
		t.Fatalf("unexpected provider requirement")
	}
}
