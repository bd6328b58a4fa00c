package checkout

import (
	"testing"

	"github.com/rasanusantara/storefront/internal/catalog"
	"github.com/rasanusantara/storefront/pkg/enums"
)

func completeShipping() ShippingInfo {
	return ShippingInfo{
		Name:       "Sari",
		Phone:      "08123456789",
		Email:      "sari@example.com",
		Address:    "Jl. Melati 1",
		City:       "Bandung",
		PostalCode: "40111",
	}
}

func TestIsShippingComplete(t *testing.T) {
	state := NewState()
	if state.IsShippingComplete() {
		t.Fatal("empty form must be incomplete")
	}

	state.SetShippingInfo(completeShipping())
	if !state.IsShippingComplete() {
		t.Fatal("expected complete form")
	}

	info := completeShipping()
	info.City = ""
	state.SetShippingInfo(info)
	if state.IsShippingComplete() {
		t.Fatal("missing city must be incomplete")
	}

	info.City = " "
	state.SetShippingInfo(info)
	if !state.IsShippingComplete() {
		t.Fatal("a single space counts as present")
	}
}

func TestClearResetsEverything(t *testing.T) {
	coupon, _ := catalog.FindCoupon("WELCOME30")
	state := NewState()
	state.SetShippingInfo(completeShipping())
	state.SetAppliedCoupon(&coupon)
	state.SetPaymentMethod(PaymentSelection{Type: enums.CheckoutPaymentTypeBankTransfer, Bank: "bca"})

	state.Clear()
	if state.ShippingInfo != (ShippingInfo{}) {
		t.Fatalf("expected empty shipping, got %+v", state.ShippingInfo)
	}
	if state.AppliedCoupon != nil {
		t.Fatal("expected coupon to be cleared")
	}
	if state.PaymentMethod != (PaymentSelection{Type: enums.CheckoutPaymentTypeNone}) {
		t.Fatalf("expected empty payment method, got %+v", state.PaymentMethod)
	}
}
