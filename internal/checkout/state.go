package checkout

import (
	"github.com/google/uuid"

	"github.com/rasanusantara/storefront/internal/catalog"
	pkgcheckout "github.com/rasanusantara/storefront/pkg/checkout"
	"github.com/rasanusantara/storefront/pkg/enums"
)

// ShippingInfo is the delivery form of the checkout page.
type ShippingInfo struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Notes      string `json:"notes"`
}

// PaymentSelection is the payment choice on the checkout form.
type PaymentSelection struct {
	Type   enums.CheckoutPaymentType `json:"type"`
	Bank   string                    `json:"bank,omitempty"`
	Wallet string                    `json:"wallet,omitempty"`
}

// State is the checkout form of a session.
type State struct {
	ShippingInfo  ShippingInfo     `json:"shippingInfo"`
	AppliedCoupon *catalog.Coupon  `json:"appliedCoupon"`
	PaymentMethod PaymentSelection `json:"paymentMethod"`
	// PlacedOrderID is set once Submit has persisted the order but has not
	// yet cleared the cart and the form.
	PlacedOrderID *uuid.UUID `json:"placedOrderId,omitempty"`
}

// NewState returns the cleared form.
func NewState() *State {
	return &State{}
}

func (s *State) SetShippingInfo(info ShippingInfo) {
	s.ShippingInfo = info
}

// SetAppliedCoupon replaces the coupon; nil removes it.
func (s *State) SetAppliedCoupon(coupon *catalog.Coupon) {
	s.AppliedCoupon = coupon
}

func (s *State) SetPaymentMethod(method PaymentSelection) {
	s.PaymentMethod = method
}

// RequiredShippingFields lists the fields that must be non-empty. Notes are
// optional.
func (s *State) RequiredShippingFields() []pkgcheckout.Field {
	info := s.ShippingInfo
	return []pkgcheckout.Field{
		{Name: "name", Value: info.Name},
		{Name: "phone", Value: info.Phone},
		{Name: "email", Value: info.Email},
		{Name: "address", Value: info.Address},
		{Name: "city", Value: info.City},
		{Name: "postalCode", Value: info.PostalCode},
	}
}

// IsShippingComplete reports whether every required field is non-empty.
// Whitespace is not trimmed.
func (s *State) IsShippingComplete() bool {
	return len(pkgcheckout.MissingFields(s.RequiredShippingFields())) == 0
}

// Clear resets shipping to empty strings, drops the coupon and the payment
// choice.
func (s *State) Clear() {
	s.ShippingInfo = ShippingInfo{}
	s.AppliedCoupon = nil
	s.PaymentMethod = PaymentSelection{Type: enums.CheckoutPaymentTypeNone}
	s.PlacedOrderID = nil
}
