package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	CouponOutcomeApplied        = "applied"
	CouponOutcomeInvalid        = "invalid"
	CouponOutcomeBelowMinimum   = "below_minimum"
	CouponOutcomeAlreadyApplied = "already_applied"
)

// CheckoutMetrics records coupon, order and payment activity.
type CheckoutMetrics struct {
	couponAttempts   *prometheus.CounterVec
	ordersPlaced     prometheus.Counter
	orderTotal       prometheus.Histogram
	paymentsStarted  *prometheus.CounterVec
	paymentsObserved *prometheus.CounterVec
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	couponAttempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coupon_applications_total",
		Help: "Coupon application attempts by outcome.",
	}, []string{"outcome"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders completed through the simple checkout flow.",
	})
	orderTotal := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_total_rupiah",
		Help:    "Grand total of placed orders in Rupiah.",
		Buckets: []float64{50000, 100000, 200000, 500000, 1000000, 2000000, 5000000},
	})
	paymentsStarted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payments_initiated_total",
		Help: "Gateway payments initiated by method.",
	}, []string{"method"})
	paymentsObserved := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_status_checks_total",
		Help: "Gateway status checks by reported status.",
	}, []string{"status"})
	reg.MustRegister(couponAttempts, ordersPlaced, orderTotal, paymentsStarted, paymentsObserved)
	return &CheckoutMetrics{
		couponAttempts:   couponAttempts,
		ordersPlaced:     ordersPlaced,
		orderTotal:       orderTotal,
		paymentsStarted:  paymentsStarted,
		paymentsObserved: paymentsObserved,
	}
}

func (c *CheckoutMetrics) IncCouponAttempt(outcome string) {
	if c == nil || c.couponAttempts == nil {
		return
	}
	c.couponAttempts.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveOrder counts a placed order and records its grand total.
func (c *CheckoutMetrics) ObserveOrder(total int64) {
	if c == nil || c.ordersPlaced == nil {
		return
	}
	c.ordersPlaced.Inc()
	c.orderTotal.Observe(float64(total))
}

func (c *CheckoutMetrics) IncPaymentInitiated(method string) {
	if c == nil || c.paymentsStarted == nil {
		return
	}
	c.paymentsStarted.WithLabelValues(normalizeLabel(method)).Inc()
}

func (c *CheckoutMetrics) IncPaymentStatus(status string) {
	if c == nil || c.paymentsObserved == nil {
		return
	}
	c.paymentsObserved.WithLabelValues(normalizeLabel(status)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
