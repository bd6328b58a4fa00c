package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/rasanusantara/storefront/pkg/db/models"
	"github.com/rasanusantara/storefront/pkg/enums"
	"github.com/rasanusantara/storefront/pkg/types"
)

// Shipping is the delivery snapshot stored with an order.
type Shipping struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Notes      string `json:"notes"`
}

// PaymentSummary records how the order was paid.
type PaymentSummary struct {
	Type     enums.CheckoutPaymentType `json:"type"`
	Provider string                    `json:"provider,omitempty"`
}

// OrderDTO is the API view of an order.
type OrderDTO struct {
	ID          uuid.UUID         `json:"id"`
	Items       []types.OrderItem `json:"items"`
	ItemCount   int               `json:"itemCount"`
	Subtotal    int64             `json:"subtotal"`
	ShippingFee int64             `json:"shippingFee"`
	Discount    int64             `json:"discount"`
	Total       int64             `json:"total"`
	CouponCode  *string           `json:"couponCode,omitempty"`
	Shipping    Shipping          `json:"shipping"`
	Payment     PaymentSummary    `json:"payment"`
	Status      enums.OrderStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// OrderList wraps a page of orders plus the next page cursor.
type OrderList struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"nextCursor,omitempty"`
}

func toDTO(m *models.Order) OrderDTO {
	items := []types.OrderItem(m.Items)
	if items == nil {
		items = []types.OrderItem{}
	}
	dto := OrderDTO{
		ID:          m.ID,
		Items:       items,
		ItemCount:   m.ItemCount,
		Subtotal:    m.Subtotal,
		ShippingFee: m.ShippingFee,
		Discount:    m.Discount,
		Total:       m.Total,
		CouponCode:  m.CouponCode,
		Shipping: Shipping{
			Name:       m.ShippingName,
			Phone:      m.ShippingPhone,
			Email:      m.ShippingEmail,
			Address:    m.ShippingAddress,
			City:       m.ShippingCity,
			PostalCode: m.ShippingPostalCode,
			Notes:      m.ShippingNotes,
		},
		Payment:   PaymentSummary{Type: m.PaymentType},
		Status:    m.Status,
		CreatedAt: m.CreatedAt.UTC(),
	}
	if m.PaymentProvider != nil {
		dto.Payment.Provider = *m.PaymentProvider
	}
	return dto
}
