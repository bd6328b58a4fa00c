package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rasanusantara/storefront/api/controllers"
	cartcontrollers "github.com/rasanusantara/storefront/api/controllers/cart"
	checkoutcontrollers "github.com/rasanusantara/storefront/api/controllers/checkout"
	ordercontrollers "github.com/rasanusantara/storefront/api/controllers/orders"
	paymentcontrollers "github.com/rasanusantara/storefront/api/controllers/payments"
	"github.com/rasanusantara/storefront/api/middleware"
	"github.com/rasanusantara/storefront/internal/cart"
	"github.com/rasanusantara/storefront/internal/checkout"
	"github.com/rasanusantara/storefront/internal/notifications"
	"github.com/rasanusantara/storefront/internal/orders"
	"github.com/rasanusantara/storefront/internal/payment"
	"github.com/rasanusantara/storefront/internal/session"
	"github.com/rasanusantara/storefront/internal/wishlist"
	"github.com/rasanusantara/storefront/pkg/config"
	"github.com/rasanusantara/storefront/pkg/logger"
	"github.com/rasanusantara/storefront/pkg/metrics"
	pkgredis "github.com/rasanusantara/storefront/pkg/redis"
)

// Params wires the router. Pingers, Idempotency and Gatherer may be nil in
// tests.
type Params struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          controllers.Pinger
	Redis       controllers.Pinger
	Idempotency pkgredis.IdempotencyStore
	Locks       *session.Locks
	Gatherer    prometheus.Gatherer
	HTTPMetrics *metrics.HTTPMetrics

	Cart          cart.Service
	Checkout      checkout.Service
	Payments      payment.Service
	Wishlist      wishlist.Service
	Notifications notifications.Service
	Orders        orders.Service
}

func NewRouter(p Params) http.Handler {
	cfg, logg := p.Config, p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, p.HTTPMetrics),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DB, p.Redis))
	})
	if p.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	idempotent := middleware.Idempotency(p.Idempotency, logg)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", controllers.CreateSession(cfg.Session, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(cfg.Session, p.Locks, logg))

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.ListProducts(logg))
				r.Get("/{productId}", controllers.ProductDetail(p.Wishlist, logg))
			})
			r.Get("/coupons", controllers.ListCoupons())

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartcontrollers.CartFetch(p.Cart, p.Checkout, logg))
				r.Delete("/", cartcontrollers.CartClear(p.Cart, p.Checkout, logg))
				r.Post("/items", cartcontrollers.CartAddItem(p.Cart, p.Checkout, logg))
				r.Patch("/items/{itemId}", cartcontrollers.CartUpdateItem(p.Cart, p.Checkout, logg))
				r.Delete("/items/{itemId}", cartcontrollers.CartRemoveItem(p.Cart, p.Checkout, logg))
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Get("/", checkoutcontrollers.CheckoutFetch(p.Checkout, logg))
				r.With(idempotent).Post("/", checkoutcontrollers.CheckoutSubmit(p.Checkout, logg))
				r.Delete("/", checkoutcontrollers.CheckoutReset(p.Checkout, logg))
				r.Put("/shipping", checkoutcontrollers.CheckoutShipping(p.Checkout, logg))
				r.Post("/coupon", checkoutcontrollers.CheckoutApplyCoupon(p.Checkout, logg))
				r.Delete("/coupon", checkoutcontrollers.CheckoutRemoveCoupon(p.Checkout, logg))
				r.Put("/payment-method", checkoutcontrollers.CheckoutPaymentMethod(p.Checkout, logg))
			})

			r.Route("/payments", func(r chi.Router) {
				r.Get("/", paymentcontrollers.PaymentHistory(p.Payments, logg))
				r.With(idempotent).Post("/", paymentcontrollers.PaymentInitiate(p.Payments, logg))
				r.Get("/current", paymentcontrollers.PaymentCurrent(p.Payments, logg))
				r.Delete("/current", paymentcontrollers.PaymentClearCurrent(p.Payments, logg))
				r.Post("/{transactionId}/status", paymentcontrollers.PaymentStatus(p.Payments, logg))
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", controllers.WishlistGet(p.Wishlist, logg))
				r.Delete("/", controllers.WishlistClear(p.Wishlist, logg))
				r.Post("/toggle", controllers.WishlistToggle(p.Wishlist, logg))
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", controllers.ListNotifications(p.Notifications, logg))
				r.Delete("/", controllers.ClearNotifications(p.Notifications, logg))
				r.Post("/read-all", controllers.MarkAllNotificationsRead(p.Notifications, logg))
				r.Post("/{notificationId}/read", controllers.MarkNotificationRead(p.Notifications, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", ordercontrollers.List(p.Orders, logg))
				r.Get("/{orderId}", ordercontrollers.Detail(p.Orders, logg))
			})
		})
	})

	return r
}
