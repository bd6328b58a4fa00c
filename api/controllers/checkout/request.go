package checkout

import (
	checkoutsvc "github.com/rasanusantara/storefront/internal/checkout"
	"github.com/rasanusantara/storefront/pkg/enums"
)

// Partial forms are accepted; completeness is only enforced on submit.
type shippingRequest struct {
	Name       string `json:"name" validate:"max=120"`
	Phone      string `json:"phone" validate:"max=32"`
	Email      string `json:"email" validate:"omitempty,email,max=254"`
	Address    string `json:"address" validate:"max=500"`
	City       string `json:"city" validate:"max=120"`
	PostalCode string `json:"postalCode" validate:"max=16"`
	Notes      string `json:"notes" validate:"max=500"`
}

func (r shippingRequest) toInfo() checkoutsvc.ShippingInfo {
	return checkoutsvc.ShippingInfo{
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		Address:    r.Address,
		City:       r.City,
		PostalCode: r.PostalCode,
		Notes:      r.Notes,
	}
}

type couponRequest struct {
	Code string `json:"code" validate:"required,max=32"`
}

type paymentMethodRequest struct {
	Type   enums.CheckoutPaymentType `json:"type"`
	Bank   string                    `json:"bank"`
	Wallet string                    `json:"wallet"`
}

func (r paymentMethodRequest) toSelection() checkoutsvc.PaymentSelection {
	return checkoutsvc.PaymentSelection{Type: r.Type, Bank: r.Bank, Wallet: r.Wallet}
}

type submitRequest struct {
	PaymentMethod *paymentMethodRequest `json:"paymentMethod"`
}
