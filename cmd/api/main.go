package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/rasanusantara/storefront/api"
	"github.com/rasanusantara/storefront/api/routes"
	"github.com/rasanusantara/storefront/internal/cart"
	"github.com/rasanusantara/storefront/internal/checkout"
	"github.com/rasanusantara/storefront/internal/notifications"
	"github.com/rasanusantara/storefront/internal/orders"
	"github.com/rasanusantara/storefront/internal/payment"
	"github.com/rasanusantara/storefront/internal/pricing"
	"github.com/rasanusantara/storefront/internal/session"
	"github.com/rasanusantara/storefront/internal/wishlist"
	"github.com/rasanusantara/storefront/pkg/config"
	"github.com/rasanusantara/storefront/pkg/db"
	"github.com/rasanusantara/storefront/pkg/logger"
	"github.com/rasanusantara/storefront/pkg/metrics"
	"github.com/rasanusantara/storefront/pkg/migrate"
	"github.com/rasanusantara/storefront/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeAutoRun(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap redis", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	checkoutMetrics := metrics.NewCheckoutMetrics(reg)

	handler, err := buildRouter(cfg, logg, dbClient, redisClient, reg, checkoutMetrics)
	if err != nil {
		logg.Error(ctx, "failed to wire services", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	cfg.App.Port = port
	server := api.NewServer(cfg, handler)

	ctx = logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": server.Addr,
	})
	logg.Info(ctx, "starting api server")

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		if err != nil {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			exitCode = 1
		}
	case <-ctx.Done():
		logg.Info(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	closeErr := multierr.Combine(
		server.Shutdown(shutdownCtx),
		redisClient.Close(),
		dbClient.Close(),
	)
	if closeErr != nil {
		logg.Error(shutdownCtx, "shutdown finished with errors", closeErr)
		exitCode = 1
	} else {
		logg.Info(shutdownCtx, "api server stopped")
	}
	os.Exit(exitCode)
}

func buildRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbClient *db.Client,
	redisClient *redis.Client,
	reg *prometheus.Registry,
	checkoutMetrics *metrics.CheckoutMetrics,
) (http.Handler, error) {
	store, err := session.NewStore(redisClient, cfg.Session.StateTTL, logg)
	if err != nil {
		return nil, err
	}

	cartService, err := cart.NewService(cart.NewRepository(store))
	if err != nil {
		return nil, err
	}
	notificationService, err := notifications.NewService(notifications.NewRepository(store), notifications.Options{
		SeedDemo: cfg.FeatureFlags.SeedNotifications,
	})
	if err != nil {
		return nil, err
	}
	orderService, err := orders.NewService(orders.NewRepository(dbClient.DB()), checkoutMetrics)
	if err != nil {
		return nil, err
	}
	checkoutService, err := checkout.NewService(checkout.ServiceParams{
		Repo:          checkout.NewRepository(store),
		Cart:          cartService,
		Orders:        orderService,
		Notifications: notificationService,
		Policy: pricing.Policy{
			ShippingFee: cfg.Checkout.ShippingFee,
			CapDiscount: cfg.Checkout.CapDiscount,
		},
		Metrics: checkoutMetrics,
		Logger:  logg,
	})
	if err != nil {
		return nil, err
	}
	paymentService, err := payment.NewService(payment.ServiceParams{
		Gateway:       payment.NewMockGateway(cfg.Payment),
		Repo:          payment.NewRepository(dbClient.DB()),
		Current:       payment.NewCurrentStore(store),
		Cart:          cartService,
		Checkout:      checkoutService,
		Notifications: notificationService,
		Metrics:       checkoutMetrics,
		Logger:        logg,
	})
	if err != nil {
		return nil, err
	}
	wishlistService, err := wishlist.NewService(wishlist.NewRepository(store))
	if err != nil {
		return nil, err
	}

	return routes.NewRouter(routes.Params{
		Config:        cfg,
		Logger:        logg,
		DB:            dbClient,
		Redis:         redisClient,
		Idempotency:   redisClient,
		Locks:         session.NewLocks(),
		Gatherer:      reg,
		HTTPMetrics:   metrics.NewHTTPMetrics(reg),
		Cart:          cartService,
		Checkout:      checkoutService,
		Payments:      paymentService,
		Wishlist:      wishlistService,
		Notifications: notificationService,
		Orders:        orderService,
	}), nil
}
