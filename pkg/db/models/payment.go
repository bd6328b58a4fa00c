package models

import (
	"time"

	"github.com/rasanusantara/storefront/pkg/enums"
)

// Payment records one mock gateway transaction and its last known status.
type Payment struct {
	TransactionID string              `gorm:"column:transaction_id;primaryKey"`
	SessionID     string              `gorm:"column:session_id;not null;index"`
	Method        enums.PaymentMethod `gorm:"column:method;not null"`
	Provider      *string             `gorm:"column:provider"`
	AccountNumber *string             `gorm:"column:account_number"`
	Amount        int64               `gorm:"column:amount;not null"`
	Status        enums.PaymentStatus `gorm:"column:status;not null;default:'pending'"`
	PaymentURL    string              `gorm:"column:payment_url;not null"`
	QRCode        *string             `gorm:"column:qr_code"`
	ExpiresAt     time.Time           `gorm:"column:expires_at;not null"`
	CompletedAt   *time.Time          `gorm:"column:completed_at"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (Payment) TableName() string { return "payments" }
