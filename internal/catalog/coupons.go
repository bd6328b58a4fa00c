package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rasanusantara/storefront/pkg/enums"
)

// Coupon is an immutable discount definition.
type Coupon struct {
	Code        string           `json:"code"`
	Type        enums.CouponType `json:"type"`
	Value       decimal.Decimal  `json:"value"`
	MinPurchase int64            `json:"minPurchase"`
	Description string           `json:"description"`
}

var coupons = []Coupon{
	{
		Code:        "WELCOME30",
		Type:        enums.CouponTypePercentage,
		Value:       decimal.NewFromInt(30),
		MinPurchase: 100000,
		Description: "Diskon 30% untuk pembelian pertama",
	},
	{
		Code:        "HEMAT5",
		Type:        enums.CouponTypeFixed,
		Value:       decimal.NewFromInt(5000),
		MinPurchase: 50000,
		Description: "Potongan Rp5.000 untuk belanja minimal Rp50.000",
	},
	{
		Code:        "SUPER20",
		Type:        enums.CouponTypeFixed,
		Value:       decimal.NewFromInt(20000),
		MinPurchase: 200000,
		Description: "Potongan Rp20.000 untuk belanja minimal Rp200.000",
	},
	{
		Code:        "MEGA50",
		Type:        enums.CouponTypePercentage,
		Value:       decimal.NewFromInt(50),
		MinPurchase: 500000,
		Description: "Diskon 50% untuk belanja minimal Rp500.000",
	},
	{
		Code:        "FLASH80",
		Type:        enums.CouponTypePercentage,
		Value:       decimal.NewFromInt(80),
		MinPurchase: 1000000,
		Description: "Flash sale diskon 80% untuk belanja minimal Rp1.000.000",
	},
}

// Coupons returns a copy of the coupon catalog.
func Coupons() []Coupon {
	out := make([]Coupon, len(coupons))
	copy(out, coupons)
	return out
}

// FindCoupon looks a code up case-insensitively.
func FindCoupon(code string) (Coupon, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return Coupon{}, false
	}
	for _, c := range coupons {
		if c.Code == normalized {
			return c, true
		}
	}
	return Coupon{}, false
}
