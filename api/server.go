package api

import (
	"net"
	"net/http"
	"time"

	"github.com/rasanusantara/storefront/pkg/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	// Payment calls block on the gateway, so writes get more room than reads.
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// NewServer returns the HTTP server that cmd/api runs.
func NewServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort("", cfg.App.Port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
}
