package wishlist

// Item is a saved product.
type Item struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image"`
}

// Wishlist is the saved-product list of a session, in insertion order.
type Wishlist struct {
	Items []Item `json:"items"`
}

func New() *Wishlist {
	return &Wishlist{Items: []Item{}}
}

// Toggle adds item when absent and removes it otherwise. It returns the new
// membership.
func (w *Wishlist) Toggle(item Item) bool {
	for i := range w.Items {
		if w.Items[i].ID == item.ID {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			return false
		}
	}
	w.Items = append(w.Items, item)
	return true
}

func (w *Wishlist) Contains(id int) bool {
	for _, item := range w.Items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (w *Wishlist) Clear() {
	w.Items = []Item{}
}

// ToggleResult reports the outcome of a toggle.
type ToggleResult struct {
	Item       Item `json:"item"`
	InWishlist bool `json:"inWishlist"`
	Count      int  `json:"count"`
}
