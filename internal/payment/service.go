package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rasanusantara/storefront/internal/cart"
	"github.com/rasanusantara/storefront/internal/checkout"
	"github.com/rasanusantara/storefront/internal/notifications"
	"github.com/rasanusantara/storefront/pkg/db/models"
	"github.com/rasanusantara/storefront/pkg/enums"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
	"github.com/rasanusantara/storefront/pkg/logger"
	"github.com/rasanusantara/storefront/pkg/metrics"
	"gorm.io/gorm"
)

// Service runs the payment-gateway checkout flow.
type Service interface {
	Initiate(ctx context.Context, sessionID string, input InitiateInput) (*Details, error)
	CheckStatus(ctx context.Context, sessionID, transactionID string) (*StatusResult, error)
	Current(ctx context.Context, sessionID string) (*Details, error)
	ClearCurrent(ctx context.Context, sessionID string) error
	History(ctx context.Context, sessionID string) ([]Details, error)
}

// InitiateInput is the client's payment choice. The amount is always the
// server-side cart total.
type InitiateInput struct {
	Method   enums.PaymentMethod
	Provider string
}

// ServiceParams groups dependencies for the payment service.
type ServiceParams struct {
	Gateway       Gateway
	Repo          Repository
	Current       *CurrentStore
	Cart          cart.Service
	Checkout      checkout.Service
	Notifications notifications.Service
	Metrics       *metrics.CheckoutMetrics
	Logger        *logger.Logger
}

type service struct {
	gateway       Gateway
	repo          Repository
	current       *CurrentStore
	cart          cart.Service
	checkout      checkout.Service
	notifications notifications.Service
	metrics       *metrics.CheckoutMetrics
	logg          *logger.Logger
	now           func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Gateway == nil {
		return nil, fmt.Errorf("payment gateway required")
	}
	if params.Repo == nil {
		return nil, fmt.Errorf("payment repository required")
	}
	if params.Current == nil {
		return nil, fmt.Errorf("current payment store required")
	}
	if params.Cart == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if params.Checkout == nil {
		return nil, fmt.Errorf("checkout service required")
	}
	if params.Notifications == nil {
		return nil, fmt.Errorf("notifications service required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{
		gateway:       params.Gateway,
		repo:          params.Repo,
		current:       params.Current,
		cart:          params.Cart,
		checkout:      params.Checkout,
		notifications: params.Notifications,
		metrics:       params.Metrics,
		logg:          logg,
		now:           func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *service) Initiate(ctx context.Context, sessionID string, input InitiateInput) (*Details, error) {
	if err := validateInitiate(input); err != nil {
		return nil, err
	}

	c, err := s.cart.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, checkout.MsgCartEmpty)
	}
	quote, err := s.checkout.Quote(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	tx, err := s.gateway.Initiate(ctx, InitiateRequest{Method: input.Method, Provider: input.Provider, Amount: quote.Total})
	if err != nil {
		return nil, gatewayError(err, "initiate payment")
	}

	now := s.now()
	record := &models.Payment{
		TransactionID: tx.TransactionID,
		SessionID:     sessionID,
		Method:        input.Method,
		Provider:      optional(input.Provider),
		AccountNumber: optional(tx.AccountNumber),
		Amount:        quote.Total,
		Status:        enums.PaymentStatusPending,
		PaymentURL:    tx.PaymentURL,
		QRCode:        optional(tx.QRCode),
		ExpiresAt:     tx.ExpiresAt.UTC(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist payment")
	}

	details := toDetails(record)
	if err := s.current.Save(ctx, sessionID, &details); err != nil {
		return nil, err
	}
	s.metrics.IncPaymentInitiated(string(input.Method))
	return &details, nil
}

// CheckStatus polls the gateway for a non-terminal payment. Terminal
// statuses are reported from history without asking the gateway again; a
// success whose session side was never settled is settled on the next poll.
func (s *service) CheckStatus(ctx context.Context, sessionID, transactionID string) (*StatusResult, error) {
	if transactionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "transaction id required")
	}
	record, err := s.repo.FindBySession(ctx, sessionID, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "payment not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load payment")
	}
	if record.Status.IsTerminal() {
		if err := s.settle(ctx, sessionID, record); err != nil {
			return nil, err
		}
		return result(toDetails(record)), nil
	}

	status, err := s.gateway.Status(ctx, transactionID)
	if err != nil {
		return nil, gatewayError(err, "check payment status")
	}
	now := s.now()
	if err := s.repo.UpdateStatus(ctx, sessionID, transactionID, status, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update payment status")
	}
	record.Status = status
	record.UpdatedAt = now
	details := toDetails(record)
	s.metrics.IncPaymentStatus(string(status))

	current, err := s.current.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if current != nil && current.TransactionID == transactionID {
		if err := s.current.Save(ctx, sessionID, &details); err != nil {
			return nil, err
		}
	}

	if err := s.settle(ctx, sessionID, record); err != nil {
		return nil, err
	}
	return result(details), nil
}

func (s *service) Current(ctx context.Context, sessionID string) (*Details, error) {
	return s.current.Load(ctx, sessionID)
}

// ClearCurrent detaches the current payment; history is kept.
func (s *service) ClearCurrent(ctx context.Context, sessionID string) error {
	return s.current.Save(ctx, sessionID, nil)
}

func (s *service) History(ctx context.Context, sessionID string) ([]Details, error) {
	rows, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list payments")
	}
	out := make([]Details, 0, len(rows))
	for i := range rows {
		out = append(out, toDetails(&rows[i]))
	}
	return out, nil
}

// settle runs complete once per successful payment. The completion mark is
// written last, so a failed step is retried by the next poll.
func (s *service) settle(ctx context.Context, sessionID string, record *models.Payment) error {
	if record.Status != enums.PaymentStatusSuccess || record.CompletedAt != nil {
		return nil
	}
	if err := s.complete(ctx, sessionID, toDetails(record)); err != nil {
		return err
	}
	now := s.now()
	if err := s.repo.MarkCompleted(ctx, sessionID, record.TransactionID, now); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark payment completed")
	}
	record.CompletedAt = &now
	return nil
}

// complete clears the cart and checkout form and notifies the session.
func (s *service) complete(ctx context.Context, sessionID string, details Details) error {
	if err := s.cart.Clear(ctx, sessionID); err != nil {
		return err
	}
	if err := s.checkout.Reset(ctx, sessionID); err != nil {
		return err
	}
	prompt := promptFor(enums.PaymentStatusSuccess)
	if _, err := s.notifications.Add(ctx, sessionID, notifications.AddInput{
		Type:    enums.NotificationTypeOrder,
		Title:   prompt.Title,
		Message: prompt.Message,
	}); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "transaction_id", details.TransactionID), "payment notification failed: "+err.Error())
	}
	return nil
}

func result(details Details) *StatusResult {
	return &StatusResult{
		Payment:   details,
		Status:    details.Status,
		Retryable: details.Status.Retryable(),
		Prompt:    promptFor(details.Status),
	}
}

func validateInitiate(input InitiateInput) error {
	if input.Method == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "payment method is required")
	}
	if !input.Method.IsValid() {
		return pkgerrors.Newf(pkgerrors.CodeValidation, "unsupported payment method %q", input.Method)
	}
	if input.Method.RequiresProvider() && input.Provider == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "provider is required for bank transfer")
	}
	switch input.Method {
	case enums.PaymentMethodBankTransfer:
		if !enums.Bank(input.Provider).IsValid() {
			return pkgerrors.Newf(pkgerrors.CodeValidation, "unsupported bank %q", input.Provider)
		}
	case enums.PaymentMethodEWallet:
		if input.Provider != "" && !enums.Wallet(input.Provider).IsValid() {
			return pkgerrors.Newf(pkgerrors.CodeValidation, "unsupported wallet %q", input.Provider)
		}
	}
	return nil
}

func gatewayError(err error, msg string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return pkgerrors.Wrap(pkgerrors.CodeCanceled, err, msg)
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, msg)
}
