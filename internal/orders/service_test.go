package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rasanusantara/storefront/internal/pricing"
	"github.com/rasanusantara/storefront/pkg/enums"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
	"github.com/rasanusantara/storefront/pkg/metrics"
	"github.com/rasanusantara/storefront/pkg/pagination"
	"github.com/rasanusantara/storefront/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (Service, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	svc, err := NewService(NewRepository(setupOrdersTestDB(t)), metrics.NewCheckoutMetrics(reg))
	require.NoError(t, err)
	return svc, reg
}

func samplePlaceInput(sessionID string) PlaceInput {
	return PlaceInput{
		SessionID: sessionID,
		Items: []types.OrderItem{
			{ProductID: 5, Name: "Kue Lapis Legit Premium", Price: 100000, Quantity: 2},
		},
		Quote: pricing.Quote{Subtotal: 200000, ShippingFee: 20000, Discount: 60000, Total: 160000, CouponCode: "WELCOME30"},
		Shipping: Shipping{
			Name: "Sari", Phone: "0812", Email: "sari@example.com",
			Address: "Jl. Melati 1", City: "Bandung", PostalCode: "40111",
		},
		Payment: PaymentSummary{Type: enums.CheckoutPaymentTypeBankTransfer, Provider: "bca"},
	}
}

func TestServicePlaceAndGet(t *testing.T) {
	svc, reg := newTestService(t)
	ctx := context.Background()

	order, err := svc.Place(ctx, samplePlaceInput("sid"))
	require.NoError(t, err)
	assert.Equal(t, int64(160000), order.Total)
	assert.Equal(t, 2, order.ItemCount)
	require.NotNil(t, order.CouponCode)
	assert.Equal(t, "WELCOME30", *order.CouponCode)
	assert.Equal(t, "bca", order.Payment.Provider)
	assert.Equal(t, enums.OrderStatusCompleted, order.Status)

	got, err := svc.Get(ctx, "sid", order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, "Bandung", got.Shipping.City)

	_, err = svc.Get(ctx, "other", order.ID)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	_, err = svc.Get(ctx, "sid", uuid.Nil)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	var placed float64
	for _, mf := range mfs {
		if mf.GetName() == "orders_placed_total" {
			placed = mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(1), placed)
}

func TestServicePlaceRejectsEmptyItems(t *testing.T) {
	svc, _ := newTestService(t)
	input := samplePlaceInput("sid")
	input.Items = nil

	_, err := svc.Place(context.Background(), input)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))
}

func TestServiceList(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Place(ctx, samplePlaceInput("sid"))
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, "sid", pagination.Params{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, list.Orders, 3)
	assert.Empty(t, list.NextCursor)

	_, err = svc.List(ctx, "sid", pagination.Params{Cursor: "%%%"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}
