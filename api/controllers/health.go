package controllers

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rasanusantara/storefront/api/responses"
	"github.com/rasanusantara/storefront/pkg/config"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
	"github.com/rasanusantara/storefront/pkg/logger"
)

const (
	envHeader    = "X-Storefront-Env"
	readyTimeout = 2 * time.Second
)

// Pinger is anything the readiness check can ping.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the database and redis concurrently.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbPinger, redisPinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		checks := map[string]string{"database": "ok", "redis": "ok"}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return ping(gctx, dbPinger, "database") })
		g.Go(func() error { return ping(gctx, redisPinger, "redis") })
		if err := g.Wait(); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}

func ping(ctx context.Context, p Pinger, name string) error {
	if p == nil {
		return pkgerrors.New(pkgerrors.CodeDependency, name+" not configured").WithDetails(map[string]any{"dependency": name})
	}
	if err := p.Ping(ctx); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unreachable").WithDetails(map[string]any{"dependency": name})
	}
	return nil
}
