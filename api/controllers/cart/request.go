package cart

import (
	"github.com/rasanusantara/storefront/internal/cart"
	"github.com/rasanusantara/storefront/internal/pricing"
)

type addItemRequest struct {
	ProductID int `json:"productId" validate:"required,min=1"`
	Quantity  int `json:"quantity" validate:"omitempty,min=1,max=99"`
}

// Zero removes the line.
type updateItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0,max=99"`
}

// cartView is the cart page payload: the lines plus the priced breakdown,
// coupon included.
type cartView struct {
	Items     []cart.Item   `json:"items"`
	ItemCount int           `json:"itemCount"`
	Quote     pricing.Quote `json:"quote"`
}

func newCartView(c *cart.Cart, quote pricing.Quote) cartView {
	items := c.Items
	if items == nil {
		items = []cart.Item{}
	}
	return cartView{Items: items, ItemCount: c.Count(), Quote: quote}
}
