// Package pricing derives cart totals. Every function is pure; amounts are
// whole Rupiah.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/rasanusantara/storefront/internal/catalog"
	"github.com/rasanusantara/storefront/pkg/enums"
)

const DefaultShippingFee int64 = 20000

var hundred = decimal.NewFromInt(100)

// Policy holds the knobs of the calculator.
type Policy struct {
	ShippingFee int64
	// CapDiscount limits the discount to the subtotal and floors the total at
	// zero. When false the raw arithmetic is kept, negative totals included.
	CapDiscount bool
}

// DefaultPolicy is the flat 20k shipping fee with capped discounts.
func DefaultPolicy() Policy {
	return Policy{ShippingFee: DefaultShippingFee, CapDiscount: true}
}

// Line is the pricing view of a cart line.
type Line struct {
	Price    int64
	Quantity int
}

// Quote is the derived price breakdown of a cart.
type Quote struct {
	Subtotal    int64  `json:"subtotal"`
	ShippingFee int64  `json:"shipping"`
	Discount    int64  `json:"discount"`
	Total       int64  `json:"total"`
	CouponCode  string `json:"couponCode,omitempty"`
}

// Subtotal is the sum of price times quantity.
func Subtotal(lines []Line) int64 {
	var total int64
	for _, l := range lines {
		total += l.Price * int64(l.Quantity)
	}
	return total
}

// Shipping returns the flat fee for a non-empty cart.
func Shipping(lines []Line, policy Policy) int64 {
	if len(lines) == 0 {
		return 0
	}
	return policy.ShippingFee
}

// Discount computes the coupon discount for subtotal. Percentage discounts
// round half away from zero.
func Discount(subtotal int64, coupon *catalog.Coupon, policy Policy) int64 {
	if coupon == nil {
		return 0
	}
	var amount int64
	switch coupon.Type {
	case enums.CouponTypePercentage:
		amount = decimal.NewFromInt(subtotal).Mul(coupon.Value).Div(hundred).Round(0).IntPart()
	case enums.CouponTypeFixed:
		amount = coupon.Value.Round(0).IntPart()
	}
	if policy.CapDiscount && amount > subtotal {
		amount = subtotal
	}
	return amount
}

// Calculate builds the full quote for lines with an optional coupon.
func Calculate(lines []Line, coupon *catalog.Coupon, policy Policy) Quote {
	subtotal := Subtotal(lines)
	shipping := Shipping(lines, policy)
	discount := Discount(subtotal, coupon, policy)
	total := subtotal + shipping - discount
	if policy.CapDiscount && total < 0 {
		total = 0
	}
	q := Quote{
		Subtotal:    subtotal,
		ShippingFee: shipping,
		Discount:    discount,
		Total:       total,
	}
	if coupon != nil {
		q.CouponCode = coupon.Code
	}
	return q
}
