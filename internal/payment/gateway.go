package payment

import (
	"context"
	"time"

	"github.com/rasanusantara/storefront/pkg/enums"
)

// InitiateRequest is what the gateway needs to open a transaction.
type InitiateRequest struct {
	Method   enums.PaymentMethod
	Provider string
	Amount   int64
}

// Transaction is the gateway's answer to an initiate call.
type Transaction struct {
	TransactionID string
	PaymentURL    string
	QRCode        string
	AccountNumber string
	ExpiresAt     time.Time
}

// Gateway talks to a payment provider.
type Gateway interface {
	Initiate(ctx context.Context, req InitiateRequest) (Transaction, error)
	Status(ctx context.Context, transactionID string) (enums.PaymentStatus, error)
}
