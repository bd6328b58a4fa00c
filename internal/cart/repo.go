package cart

import (
	"context"

	"github.com/rasanusantara/storefront/internal/session"
)

const blobVersion = 1

// SessionRepository stores carts as session blobs.
type SessionRepository struct {
	store *session.Store
}

// NewRepository binds the cart repository to the session store.
func NewRepository(store *session.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Load(ctx context.Context, sessionID string) (*Cart, error) {
	c, err := session.Load(ctx, r.store, sessionID, session.KeyCart, blobVersion, New)
	if err != nil {
		return nil, err
	}
	if c.Items == nil {
		c.Items = []Item{}
	}
	return c, nil
}

func (r *SessionRepository) Save(ctx context.Context, sessionID string, c *Cart) error {
	return session.Save(ctx, r.store, sessionID, session.KeyCart, blobVersion, c)
}
