package checkout

import (
	"context"

	"github.com/rasanusantara/storefront/internal/session"
)

const blobVersion = 1

// Repository persists the checkout form of a session.
type Repository interface {
	Load(ctx context.Context, sessionID string) (*State, error)
	Save(ctx context.Context, sessionID string, state *State) error
	// Delete drops the stored form; the next Load yields a cleared one.
	Delete(ctx context.Context, sessionID string) error
}

type sessionRepository struct {
	store *session.Store
}

// NewRepository stores checkout forms as session blobs.
func NewRepository(store *session.Store) Repository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Load(ctx context.Context, sessionID string) (*State, error) {
	return session.Load(ctx, r.store, sessionID, session.KeyCheckout, blobVersion, NewState)
}

func (r *sessionRepository) Save(ctx context.Context, sessionID string, state *State) error {
	return session.Save(ctx, r.store, sessionID, session.KeyCheckout, blobVersion, state)
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.store.Delete(ctx, sessionID, session.KeyCheckout)
}
