package notifications

import (
	"context"

	"github.com/rasanusantara/storefront/internal/session"
)

const blobVersion = 1

// Repository persists the inbox of a session.
type Repository interface {
	Load(ctx context.Context, sessionID string) (*Inbox, error)
	Save(ctx context.Context, sessionID string, inbox *Inbox) error
}

type sessionRepository struct {
	store *session.Store
}

// NewRepository stores inboxes as session blobs.
func NewRepository(store *session.Store) Repository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Load(ctx context.Context, sessionID string) (*Inbox, error) {
	inbox, err := session.Load(ctx, r.store, sessionID, session.KeyNotifications, blobVersion, NewInbox)
	if err != nil {
		return nil, err
	}
	if inbox.Items == nil {
		inbox.Items = []Notification{}
	}
	return inbox, nil
}

func (r *sessionRepository) Save(ctx context.Context, sessionID string, inbox *Inbox) error {
	return session.Save(ctx, r.store, sessionID, session.KeyNotifications, blobVersion, inbox)
}
