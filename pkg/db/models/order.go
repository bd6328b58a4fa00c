package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rasanusantara/storefront/pkg/enums"
	"github.com/rasanusantara/storefront/pkg/types"
)

// Order stores a completed checkout for an anonymous session.
type Order struct {
	ID                 uuid.UUID                 `gorm:"column:id;type:text;primaryKey"`
	SessionID          string                    `gorm:"column:session_id;not null;index"`
	Items              types.OrderItems          `gorm:"column:items;type:text;not null"`
	ItemCount          int                       `gorm:"column:item_count;not null"`
	Subtotal           int64                     `gorm:"column:subtotal;not null"`
	ShippingFee        int64                     `gorm:"column:shipping_fee;not null"`
	Discount           int64                     `gorm:"column:discount;not null"`
	Total              int64                     `gorm:"column:total;not null"`
	CouponCode         *string                   `gorm:"column:coupon_code"`
	ShippingName       string                    `gorm:"column:shipping_name;not null"`
	ShippingPhone      string                    `gorm:"column:shipping_phone;not null"`
	ShippingEmail      string                    `gorm:"column:shipping_email;not null"`
	ShippingAddress    string                    `gorm:"column:shipping_address;not null"`
	ShippingCity       string                    `gorm:"column:shipping_city;not null"`
	ShippingPostalCode string                    `gorm:"column:shipping_postal_code;not null"`
	ShippingNotes      string                    `gorm:"column:shipping_notes;not null;default:''"`
	PaymentType        enums.CheckoutPaymentType `gorm:"column:payment_type;not null"`
	PaymentProvider    *string                   `gorm:"column:payment_provider"`
	Status             enums.OrderStatus         `gorm:"column:status;not null;default:'completed'"`
	CreatedAt          time.Time                 `gorm:"column:created_at;autoCreateTime"`
}

func (Order) TableName() string { return "orders" }
