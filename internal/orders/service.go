package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rasanusantara/storefront/internal/pricing"
	"github.com/rasanusantara/storefront/pkg/db/models"
	"github.com/rasanusantara/storefront/pkg/enums"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
	"github.com/rasanusantara/storefront/pkg/metrics"
	"github.com/rasanusantara/storefront/pkg/pagination"
	"github.com/rasanusantara/storefront/pkg/types"
	"gorm.io/gorm"
)

// Service places and reads session orders.
type Service interface {
	Place(ctx context.Context, input PlaceInput) (*OrderDTO, error)
	Get(ctx context.Context, sessionID string, id uuid.UUID) (*OrderDTO, error)
	List(ctx context.Context, sessionID string, params pagination.Params) (*OrderList, error)
}

// PlaceInput is the snapshot persisted for a completed checkout.
type PlaceInput struct {
	SessionID string
	Items     []types.OrderItem
	Quote     pricing.Quote
	Shipping  Shipping
	Payment   PaymentSummary
}

type service struct {
	repo    Repository
	metrics *metrics.CheckoutMetrics
	now     func() time.Time
}

// NewService wires the orders service. A nil recorder disables metrics.
func NewService(repo Repository, recorder *metrics.CheckoutMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{
		repo:    repo,
		metrics: recorder,
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *service) Place(ctx context.Context, input PlaceInput) (*OrderDTO, error) {
	if input.SessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	items := types.OrderItems(input.Items)
	record := &models.Order{
		ID:                 uuid.New(),
		SessionID:          input.SessionID,
		Items:              items,
		ItemCount:          items.Count(),
		Subtotal:           input.Quote.Subtotal,
		ShippingFee:        input.Quote.ShippingFee,
		Discount:           input.Quote.Discount,
		Total:              input.Quote.Total,
		ShippingName:       input.Shipping.Name,
		ShippingPhone:      input.Shipping.Phone,
		ShippingEmail:      input.Shipping.Email,
		ShippingAddress:    input.Shipping.Address,
		ShippingCity:       input.Shipping.City,
		ShippingPostalCode: input.Shipping.PostalCode,
		ShippingNotes:      input.Shipping.Notes,
		PaymentType:        input.Payment.Type,
		Status:             enums.OrderStatusCompleted,
		CreatedAt:          s.now(),
	}
	if input.Quote.CouponCode != "" {
		code := input.Quote.CouponCode
		record.CouponCode = &code
	}
	if input.Payment.Provider != "" {
		provider := input.Payment.Provider
		record.PaymentProvider = &provider
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
	}
	s.metrics.ObserveOrder(created.Total)

	dto := toDTO(created)
	return &dto, nil
}

func (s *service) Get(ctx context.Context, sessionID string, id uuid.UUID) (*OrderDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	record, err := s.repo.FindBySession(ctx, sessionID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	dto := toDTO(record)
	return &dto, nil
}

func (s *service) List(ctx context.Context, sessionID string, params pagination.Params) (*OrderList, error) {
	if _, err := pagination.ParseCursor(params.Cursor); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	rows, next, err := s.repo.ListBySession(ctx, sessionID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	list := &OrderList{Orders: make([]OrderDTO, 0, len(rows))}
	for i := range rows {
		list.Orders = append(list.Orders, toDTO(&rows[i]))
	}
	if next != nil {
		list.NextCursor = pagination.EncodeCursor(*next)
	}
	return list, nil
}
