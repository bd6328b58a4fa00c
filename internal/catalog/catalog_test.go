package catalog

import (
	"testing"

	"github.com/rasanusantara/storefront/pkg/enums"
)

func TestFindCouponIsCaseInsensitive(t *testing.T) {
	c, ok := FindCoupon("  welcome30 ")
	if !ok {
		t.Fatalf("expected WELCOME30 to be found")
	}
	if c.Type != enums.CouponTypePercentage || c.Value.IntPart() != 30 || c.MinPurchase != 100000 {
		t.Fatalf("unexpected coupon %+v", c)
	}
	if _, ok := FindCoupon("NOPE"); ok {
		t.Fatalf("expected unknown code to miss")
	}
	if _, ok := FindCoupon(""); ok {
		t.Fatalf("expected empty code to miss")
	}
}

func TestCouponsReturnsCopy(t *testing.T) {
	list := Coupons()
	if len(list) != 5 {
		t.Fatalf("expected five coupons, got %d", len(list))
	}
	list[0].Code = "MUTATED"
	if _, ok := FindCoupon("WELCOME30"); !ok {
		t.Fatalf("catalog should not be mutated through the copy")
	}
}

func TestSearchProducts(t *testing.T) {
	if got := SearchProducts(ProductQuery{Text: "PANDAN"}); len(got) != 2 {
		t.Fatalf("expected two pandan products, got %d", len(got))
	}
	if got := SearchProducts(ProductQuery{Text: "oreo"}); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected description match on oreo, got %+v", got)
	}
	if got := SearchProducts(ProductQuery{Category: "dessert-box"}); len(got) != 2 {
		t.Fatalf("expected two dessert boxes, got %d", len(got))
	}
	if got := SearchProducts(ProductQuery{Category: "all"}); len(got) != len(products) {
		t.Fatalf("expected all products")
	}
	for _, p := range SearchProducts(ProductQuery{InStockOnly: true}) {
		if p.Stock <= 0 {
			t.Fatalf("out of stock product %d returned", p.ID)
		}
	}

	sorted := SearchProducts(ProductQuery{Category: "minuman", Sort: SortPriceHighLow})
	if len(sorted) != 2 || sorted[0].ID != 202 {
		t.Fatalf("expected kopi first, got %+v", sorted)
	}

	ranged := SearchProducts(ProductQuery{MinPrice: 100000, MaxPrice: 150000})
	if len(ranged) != 2 {
		t.Fatalf("expected two products in range, got %d", len(ranged))
	}
}

func TestFindProductAndCategories(t *testing.T) {
	p, ok := FindProduct(5)
	if !ok || p.Name != "Kue Lapis Legit Premium" || p.Stock != 15 {
		t.Fatalf("unexpected product %+v", p)
	}
	if _, ok := FindProduct(999); ok {
		t.Fatalf("expected miss for unknown id")
	}
	cats := Categories()
	if len(cats) != 5 || cats[0] != "bolu" {
		t.Fatalf("unexpected categories %v", cats)
	}
}
