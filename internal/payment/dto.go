package payment

import (
	"time"

	"github.com/rasanusantara/storefront/pkg/db/models"
	"github.com/rasanusantara/storefront/pkg/enums"
)

// Details is the API and session view of a payment.
type Details struct {
	TransactionID string              `json:"transactionId"`
	Method        enums.PaymentMethod `json:"method"`
	Provider      string              `json:"provider,omitempty"`
	AccountNumber string              `json:"accountNumber,omitempty"`
	Amount        int64               `json:"amount"`
	Status        enums.PaymentStatus `json:"status"`
	PaymentURL    string              `json:"paymentUrl"`
	QRCode        string              `json:"qrCode,omitempty"`
	ExpiryTime    time.Time           `json:"expiryTime"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// Prompt is the user-facing message for a status.
type Prompt struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// StatusResult is returned by a status poll.
type StatusResult struct {
	Payment   Details             `json:"payment"`
	Status    enums.PaymentStatus `json:"status"`
	Retryable bool                `json:"retryable"`
	Prompt    Prompt              `json:"prompt"`
}

func promptFor(status enums.PaymentStatus) Prompt {
	switch status {
	case enums.PaymentStatusSuccess:
		return Prompt{Title: "Pembayaran berhasil", Message: "Terima kasih atas pembayaran Anda"}
	case enums.PaymentStatusFailed:
		return Prompt{Title: "Pembayaran gagal", Message: "Silakan coba lagi atau gunakan metode pembayaran lain"}
	case enums.PaymentStatusExpired:
		return Prompt{Title: "Pembayaran kedaluwarsa", Message: "Batas waktu pembayaran telah berakhir"}
	default:
		return Prompt{Title: "Status pembayaran", Message: "Status pembayaran Anda: " + string(status)}
	}
}

func toDetails(m *models.Payment) Details {
	d := Details{
		TransactionID: m.TransactionID,
		Method:        m.Method,
		Amount:        m.Amount,
		Status:        m.Status,
		PaymentURL:    m.PaymentURL,
		ExpiryTime:    m.ExpiresAt.UTC(),
		CreatedAt:     m.CreatedAt.UTC(),
	}
	if m.Provider != nil {
		d.Provider = *m.Provider
	}
	if m.AccountNumber != nil {
		d.AccountNumber = *m.AccountNumber
	}
	if m.QRCode != nil {
		d.QRCode = *m.QRCode
	}
	return d
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
