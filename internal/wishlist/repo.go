package wishlist

import (
	"context"

	"github.com/rasanusantara/storefront/internal/session"
)

const blobVersion = 1

// Repository persists session wishlists as blobs.
type Repository struct {
	store *session.Store
}

func NewRepository(store *session.Store) *Repository {
	return &Repository{store: store}
}

func (r *Repository) Load(ctx context.Context, sessionID string) (*Wishlist, error) {
	w, err := session.Load(ctx, r.store, sessionID, session.KeyWishlist, blobVersion, New)
	if err != nil {
		return nil, err
	}
	if w.Items == nil {
		w.Items = []Item{}
	}
	return w, nil
}

func (r *Repository) Save(ctx context.Context, sessionID string, w *Wishlist) error {
	return session.Save(ctx, r.store, sessionID, session.KeyWishlist, blobVersion, w)
}
