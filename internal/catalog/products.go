package catalog

import (
	"sort"
	"strings"
)

// Product is a catalog entry. Prices are whole Rupiah.
type Product struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	Image        string `json:"image"`
	Stock        int    `json:"stock"`
	Category     string `json:"category"`
	IsNew        bool   `json:"isNew"`
	IsBestSeller bool   `json:"isBestSeller"`
}

const (
	SortPriceLowHigh = "price-low-high"
	SortPriceHighLow = "price-high-low"
	SortNameAZ       = "name-a-z"
	SortNameZA       = "name-z-a"
)

var products = []Product{
	{ID: 1, Name: "Bolu Pandan Keju", Description: "Bolu pandan lembut dengan taburan keju yang melimpah", Price: 85000, Image: "/placeholder.svg?height=300&width=300", Stock: 25, Category: "bolu", IsNew: true},
	{ID: 2, Name: "Dessert Box Oreo", Description: "Dessert box dengan lapisan oreo, cream cheese, dan coklat", Price: 95000, Image: "/placeholder.svg?height=300&width=300", Stock: 18, Category: "dessert-box", IsBestSeller: true},
	{ID: 3, Name: "Bolu Marmer Premium", Description: "Bolu marmer dengan tekstur lembut dan rasa yang kaya", Price: 90000, Image: "/placeholder.svg?height=300&width=300", Stock: 12, Category: "bolu"},
	{ID: 4, Name: "Dessert Box Red Velvet", Description: "Dessert box red velvet dengan cream cheese yang lezat", Price: 98000, Image: "/placeholder.svg?height=300&width=300", Stock: 4, Category: "dessert-box", IsNew: true, IsBestSeller: true},
	{ID: 5, Name: "Kue Lapis Legit Premium", Description: "Kue lapis legit premium dengan cita rasa autentik dan tekstur yang lembut", Price: 150000, Image: "/placeholder.svg?height=600&width=600", Stock: 15, Category: "kue-tradisional", IsNew: true, IsBestSeller: true},
	{ID: 101, Name: "Kue Lapis Surabaya", Description: "Lapis surabaya tiga lapis dengan selai stroberi", Price: 120000, Image: "/placeholder.svg?height=300&width=300&text=Lapis+Surabaya", Stock: 10, Category: "kue-tradisional"},
	{ID: 102, Name: "Bolu Pandan", Description: "Bolu pandan klasik yang harum", Price: 85000, Image: "/placeholder.svg?height=300&width=300&text=Bolu+Pandan", Stock: 20, Category: "bolu"},
	{ID: 103, Name: "Nastar Nanas", Description: "Nastar dengan selai nanas homemade", Price: 95000, Image: "/placeholder.svg?height=300&width=300&text=Nastar", Stock: 30, Category: "kue-kering", IsBestSeller: true},
	{ID: 104, Name: "Kue Putri Salju", Description: "Kue putri salju lumer di mulut", Price: 90000, Image: "/placeholder.svg?height=300&width=300&text=Putri+Salju", Stock: 0, Category: "kue-kering"},
	{ID: 201, Name: "Teh Melati Premium", Description: "Teh melati pilihan untuk teman kue", Price: 45000, Image: "/placeholder.svg?height=200&width=200&text=Teh+Melati", Stock: 40, Category: "minuman"},
	{ID: 202, Name: "Kopi Tubruk Tradisional", Description: "Kopi tubruk robusta sangrai tradisional", Price: 55000, Image: "/placeholder.svg?height=200&width=200&text=Kopi+Tubruk", Stock: 35, Category: "minuman"},
}

// ProductQuery filters the catalog. Zero values disable a filter.
type ProductQuery struct {
	Text        string
	Category    string
	InStockOnly bool
	NewOnly     bool
	BestSeller  bool
	MinPrice    int64
	MaxPrice    int64
	Sort        string
}

// FindProduct returns the product with the given id.
func FindProduct(id int) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Categories lists the distinct category slugs in catalog order.
func Categories() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// SearchProducts returns the products matching q. Text matches name or
// description case-insensitively; category "all" matches everything.
func SearchProducts(q ProductQuery) []Product {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	category := strings.TrimSpace(q.Category)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if text != "" &&
			!strings.Contains(strings.ToLower(p.Name), text) &&
			!strings.Contains(strings.ToLower(p.Description), text) {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if q.InStockOnly && p.Stock <= 0 {
			continue
		}
		if q.NewOnly && !p.IsNew {
			continue
		}
		if q.BestSeller && !p.IsBestSeller {
			continue
		}
		if q.MinPrice > 0 && p.Price < q.MinPrice {
			continue
		}
		if q.MaxPrice > 0 && p.Price > q.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case SortPriceLowHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHighLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNameAZ:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortNameZA:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	}
	return out
}
