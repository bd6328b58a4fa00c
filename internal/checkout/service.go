package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rasanusantara/storefront/internal/cart"
	"github.com/rasanusantara/storefront/internal/notifications"
	"github.com/rasanusantara/storefront/internal/orders"
	"github.com/rasanusantara/storefront/internal/pricing"
	pkgcheckout "github.com/rasanusantara/storefront/pkg/checkout"
	"github.com/rasanusantara/storefront/pkg/enums"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
	"github.com/rasanusantara/storefront/pkg/logger"
	"github.com/rasanusantara/storefront/pkg/metrics"
	"github.com/rasanusantara/storefront/pkg/types"
)

const (
	MsgCartEmpty            = "cart is empty"
	MsgCouponAlreadyApplied = "a coupon is already applied"

	orderNotificationTitle = "Pembelian Berhasil"
)

// Service executes checkout form updates and the simple checkout flow.
type Service interface {
	Get(ctx context.Context, sessionID string) (*View, error)
	Quote(ctx context.Context, sessionID string) (pricing.Quote, error)
	SetShippingInfo(ctx context.Context, sessionID string, info ShippingInfo) (*View, error)
	ApplyCoupon(ctx context.Context, sessionID, code string) (*View, error)
	RemoveCoupon(ctx context.Context, sessionID string) (*View, error)
	SetPaymentMethod(ctx context.Context, sessionID string, method PaymentSelection) (*View, error)
	Reset(ctx context.Context, sessionID string) error
	Submit(ctx context.Context, sessionID string, input SubmitInput) (*orders.OrderDTO, error)
}

// View is the checkout form together with the derived quote.
type View struct {
	Checkout         *State        `json:"checkout"`
	Quote            pricing.Quote `json:"quote"`
	ShippingComplete bool          `json:"shippingComplete"`
}

// SubmitInput optionally overrides the stored payment choice.
type SubmitInput struct {
	PaymentMethod *PaymentSelection
}

// ServiceParams groups dependencies for the checkout service.
type ServiceParams struct {
	Repo          Repository
	Cart          cart.Service
	Orders        orders.Service
	Notifications notifications.Service
	Policy        pricing.Policy
	Metrics       *metrics.CheckoutMetrics
	Logger        *logger.Logger
}

type service struct {
	repo          Repository
	cart          cart.Service
	orders        orders.Service
	notifications notifications.Service
	policy        pricing.Policy
	metrics       *metrics.CheckoutMetrics
	logg          *logger.Logger
}

// NewService builds the checkout service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("checkout repository required")
	}
	if params.Cart == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("orders service required")
	}
	if params.Notifications == nil {
		return nil, fmt.Errorf("notifications service required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{
		repo:          params.Repo,
		cart:          params.Cart,
		orders:        params.Orders,
		notifications: params.Notifications,
		policy:        params.Policy,
		metrics:       params.Metrics,
		logg:          logg,
	}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*View, error) {
	state, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, sessionID, state)
}

func (s *service) Quote(ctx context.Context, sessionID string) (pricing.Quote, error) {
	state, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return pricing.Quote{}, err
	}
	c, err := s.cart.Get(ctx, sessionID)
	if err != nil {
		return pricing.Quote{}, err
	}
	return pricing.Calculate(c.Lines(), state.AppliedCoupon, s.policy), nil
}

func (s *service) SetShippingInfo(ctx context.Context, sessionID string, info ShippingInfo) (*View, error) {
	return s.update(ctx, sessionID, func(state *State) error {
		state.SetShippingInfo(info)
		return nil
	})
}

// ApplyCoupon validates code against the current subtotal. Rejections leave
// the stored form untouched.
func (s *service) ApplyCoupon(ctx context.Context, sessionID, code string) (*View, error) {
	state, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.AppliedCoupon != nil {
		s.metrics.IncCouponAttempt(metrics.CouponOutcomeAlreadyApplied)
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, MsgCouponAlreadyApplied).WithDetails(map[string]any{
			"applied": state.AppliedCoupon.Code,
		})
	}

	c, err := s.cart.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	coupon, err := pricing.CheckCoupon(code, c.Subtotal())
	if err != nil {
		outcome := metrics.CouponOutcomeBelowMinimum
		if typed := pkgerrors.As(err); typed != nil && typed.Message() == pricing.MsgInvalidCoupon {
			outcome = metrics.CouponOutcomeInvalid
		}
		s.metrics.IncCouponAttempt(outcome)
		return nil, err
	}

	state.SetAppliedCoupon(&coupon)
	if err := s.repo.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	s.metrics.IncCouponAttempt(metrics.CouponOutcomeApplied)
	return s.view(ctx, sessionID, state)
}

func (s *service) RemoveCoupon(ctx context.Context, sessionID string) (*View, error) {
	return s.update(ctx, sessionID, func(state *State) error {
		state.SetAppliedCoupon(nil)
		return nil
	})
}

// SetPaymentMethod stores the choice. Partial selections are allowed until
// submission, but named values must be known.
func (s *service) SetPaymentMethod(ctx context.Context, sessionID string, method PaymentSelection) (*View, error) {
	if method.Type != enums.CheckoutPaymentTypeNone && !method.Type.IsValid() {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "unsupported payment method %q", method.Type)
	}
	if method.Bank != "" && !enums.Bank(method.Bank).IsValid() {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "unsupported bank %q", method.Bank)
	}
	if method.Wallet != "" && !enums.Wallet(method.Wallet).IsValid() {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "unsupported wallet %q", method.Wallet)
	}
	return s.update(ctx, sessionID, func(state *State) error {
		state.SetPaymentMethod(method)
		return nil
	})
}

func (s *service) Reset(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}

// Submit runs the simple checkout flow: validate, persist the order, notify,
// then clear the cart and the form. A form that still carries a placed order
// finishes that submission instead of placing another one.
func (s *service) Submit(ctx context.Context, sessionID string, input SubmitInput) (*orders.OrderDTO, error) {
	state, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.PlacedOrderID != nil {
		return s.resume(ctx, sessionID, *state.PlacedOrderID)
	}

	c, err := s.cart.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, MsgCartEmpty)
	}
	if err := pkgcheckout.ValidateShipping(state.RequiredShippingFields()); err != nil {
		return nil, err
	}

	method := state.PaymentMethod
	if input.PaymentMethod != nil {
		method = *input.PaymentMethod
	}
	if err := pkgcheckout.ValidatePaymentSelection(method.Type, method.Bank, method.Wallet); err != nil {
		return nil, err
	}
	state.SetPaymentMethod(method)

	quote := pricing.Calculate(c.Lines(), state.AppliedCoupon, s.policy)
	order, err := s.orders.Place(ctx, orders.PlaceInput{
		SessionID: sessionID,
		Items:     orderItems(c),
		Quote:     quote,
		Shipping:  orders.Shipping(state.ShippingInfo),
		Payment:   orders.PaymentSummary{Type: method.Type, Provider: provider(method)},
	})
	if err != nil {
		return nil, err
	}

	state.PlacedOrderID = &order.ID
	if err := s.repo.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	if _, err := s.notifications.Add(ctx, sessionID, notifications.AddInput{
		Type:    enums.NotificationTypeOrder,
		Title:   orderNotificationTitle,
		Message: fmt.Sprintf("Terima kasih telah berbelanja. Pesanan Anda senilai %s sedang diproses.", pricing.FormatRupiah(order.Total)),
	}); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "order_id", order.ID.String()), "order notification failed: "+err.Error())
	}

	if err := s.finish(ctx, sessionID); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *service) resume(ctx context.Context, sessionID string, orderID uuid.UUID) (*orders.OrderDTO, error) {
	order, err := s.orders.Get(ctx, sessionID, orderID)
	if err != nil {
		return nil, err
	}
	s.logg.Info(s.logg.WithField(ctx, "order_id", orderID.String()), "resuming placed order")
	if err := s.finish(ctx, sessionID); err != nil {
		return nil, err
	}
	return order, nil
}

// finish clears the cart before the form so the placed-order marker outlives
// a failed cart write.
func (s *service) finish(ctx context.Context, sessionID string) error {
	if err := s.cart.Clear(ctx, sessionID); err != nil {
		return err
	}
	return s.Reset(ctx, sessionID)
}

func (s *service) update(ctx context.Context, sessionID string, mutate func(*State) error) (*View, error) {
	state, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := mutate(state); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return s.view(ctx, sessionID, state)
}

func (s *service) view(ctx context.Context, sessionID string, state *State) (*View, error) {
	c, err := s.cart.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &View{
		Checkout:         state,
		Quote:            pricing.Calculate(c.Lines(), state.AppliedCoupon, s.policy),
		ShippingComplete: state.IsShippingComplete(),
	}, nil
}

func orderItems(c *cart.Cart) []types.OrderItem {
	items := make([]types.OrderItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, types.OrderItem{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}
	return items
}

func provider(method PaymentSelection) string {
	switch method.Type {
	case enums.CheckoutPaymentTypeBankTransfer:
		return method.Bank
	case enums.CheckoutPaymentTypeEWallet:
		return method.Wallet
	}
	return ""
}
