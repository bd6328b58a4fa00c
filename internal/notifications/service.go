package notifications

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rasanusantara/storefront/pkg/enums"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
)

// Service defines inbox operations.
type Service interface {
	List(ctx context.Context, sessionID string) (*Inbox, error)
	Add(ctx context.Context, sessionID string, input AddInput) (*Notification, error)
	MarkRead(ctx context.Context, sessionID, notificationID string) error
	MarkAllRead(ctx context.Context, sessionID string) (int, error)
	Clear(ctx context.Context, sessionID string) error
}

// AddInput describes a new notification.
type AddInput struct {
	Type    enums.NotificationType
	Title   string
	Message string
}

// Options tunes the service. Zero values pick sane defaults.
type Options struct {
	SeedDemo bool
	Now      func() time.Time
	NewID    func() string
}

type service struct {
	repo     Repository
	seedDemo bool
	now      func() time.Time
	newID    func() string
}

// NewService wires notifications dependencies.
func NewService(repo Repository, opts Options) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifications repository required")
	}
	svc := &service{repo: repo, seedDemo: opts.SeedDemo, now: opts.Now, newID: opts.NewID}
	if svc.now == nil {
		svc.now = func() time.Time { return time.Now().UTC() }
	}
	if svc.newID == nil {
		svc.newID = uuid.NewString
	}
	return svc, nil
}

// List returns the inbox, seeding the demo entries the first time an empty
// inbox is viewed.
func (s *service) List(ctx context.Context, sessionID string) (*Inbox, error) {
	inbox, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !s.seedDemo || inbox.Seeded {
		return inbox, nil
	}
	inbox.SeedDemo(s.newID, s.now())
	if err := s.repo.Save(ctx, sessionID, inbox); err != nil {
		return nil, err
	}
	return inbox, nil
}

func (s *service) Add(ctx context.Context, sessionID string, input AddInput) (*Notification, error) {
	if !input.Type.IsValid() {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "invalid notification type %q", input.Type)
	}
	if input.Title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "notification title required")
	}

	inbox, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	n := inbox.Add(Notification{
		ID:        s.newID(),
		Type:      input.Type,
		Title:     input.Title,
		Message:   input.Message,
		CreatedAt: s.now(),
	})
	if err := s.repo.Save(ctx, sessionID, inbox); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *service) MarkRead(ctx context.Context, sessionID, notificationID string) error {
	if notificationID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "notification id required")
	}
	inbox, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	if !inbox.MarkRead(notificationID) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "notification not found")
	}
	return s.repo.Save(ctx, sessionID, inbox)
}

func (s *service) MarkAllRead(ctx context.Context, sessionID string) (int, error) {
	inbox, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	changed := inbox.MarkAllRead()
	if err := s.repo.Save(ctx, sessionID, inbox); err != nil {
		return 0, err
	}
	return changed, nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	inbox, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	inbox.Clear()
	return s.repo.Save(ctx, sessionID, inbox)
}
