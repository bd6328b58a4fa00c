package payment

import (
	"context"
	"time"

	"github.com/rasanusantara/storefront/internal/session"
	"github.com/rasanusantara/storefront/pkg/db/models"
	"github.com/rasanusantara/storefront/pkg/enums"
	"gorm.io/gorm"
)

// Repository persists payment history.
type Repository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindBySession(ctx context.Context, sessionID, transactionID string) (*models.Payment, error)
	UpdateStatus(ctx context.Context, sessionID, transactionID string, status enums.PaymentStatus, now time.Time) error
	// MarkCompleted records that the session side of a successful payment
	// has been settled.
	MarkCompleted(ctx context.Context, sessionID, transactionID string, now time.Time) error
	ListBySession(ctx context.Context, sessionID string) ([]models.Payment, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository binds payment history to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *repository) FindBySession(ctx context.Context, sessionID, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).
		Where("transaction_id = ? AND session_id = ?", transactionID, sessionID).
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *repository) UpdateStatus(ctx context.Context, sessionID, transactionID string, status enums.PaymentStatus, now time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("transaction_id = ? AND session_id = ?", transactionID, sessionID).
		Updates(map[string]any{"status": status, "updated_at": now}).Error
}

func (r *repository) MarkCompleted(ctx context.Context, sessionID, transactionID string, now time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("transaction_id = ? AND session_id = ?", transactionID, sessionID).
		Updates(map[string]any{"completed_at": now, "updated_at": now}).Error
}

// ListBySession returns history in initiation order.
func (r *repository) ListBySession(ctx context.Context, sessionID string) ([]models.Payment, error) {
	var rows []models.Payment
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC, transaction_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

const currentBlobVersion = 1

type currentPayment struct {
	Payment *Details `json:"payment"`
}

func newCurrentPayment() currentPayment {
	return currentPayment{}
}

// CurrentStore keeps the current payment pointer in the session.
type CurrentStore struct {
	store *session.Store
}

func NewCurrentStore(store *session.Store) *CurrentStore {
	return &CurrentStore{store: store}
}

func (c *CurrentStore) Load(ctx context.Context, sessionID string) (*Details, error) {
	cur, err := session.Load(ctx, c.store, sessionID, session.KeyPayment, currentBlobVersion, newCurrentPayment)
	if err != nil {
		return nil, err
	}
	return cur.Payment, nil
}

// Save stores d as current; nil detaches it.
func (c *CurrentStore) Save(ctx context.Context, sessionID string, d *Details) error {
	return session.Save(ctx, c.store, sessionID, session.KeyPayment, currentBlobVersion, currentPayment{Payment: d})
}
