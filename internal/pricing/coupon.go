package pricing

import (
	"github.com/rasanusantara/storefront/internal/catalog"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
)

const MsgInvalidCoupon = "invalid coupon code"

// CheckCoupon resolves code against the catalog and verifies the minimum
// purchase. A subtotal equal to the minimum is accepted.
func CheckCoupon(code string, subtotal int64) (catalog.Coupon, error) {
	coupon, ok := catalog.FindCoupon(code)
	if !ok {
		return catalog.Coupon{}, pkgerrors.New(pkgerrors.CodeValidation, MsgInvalidCoupon)
	}
	if subtotal < coupon.MinPurchase {
		return catalog.Coupon{}, pkgerrors.Newf(pkgerrors.CodeValidation,
			"minimum purchase %s required to use this coupon", FormatRupiah(coupon.MinPurchase)).
			WithDetails(map[string]any{
				"code":        coupon.Code,
				"minPurchase": coupon.MinPurchase,
				"subtotal":    subtotal,
			})
	}
	return coupon, nil
}
