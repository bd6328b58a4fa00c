package payment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/rasanusantara/storefront/pkg/config"
	"github.com/rasanusantara/storefront/pkg/enums"
)

const (
	transactionIDLength = 9
	base36Alphabet      = "0123456789abcdefghijklmnopqrstuvwxyz"
	mockAccountNumber   = "8800123456789"
)

// MockOptions configures MockGateway.
type MockOptions struct {
	InitiateLatency time.Duration
	StatusLatency   time.Duration
	Expiry          time.Duration
	GatewayBaseURL  string
	QRBaseURL       string
	Rand            *rand.Rand
	Now             func() time.Time
}

// MockGateway fakes a provider: it waits, invents ids and URLs, and reports
// statuses drawn uniformly at random.
type MockGateway struct {
	opts MockOptions

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMockGateway builds a mock gateway from config. A zero seed draws one
// from the clock.
func NewMockGateway(cfg config.PaymentConfig) *MockGateway {
	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewMockGatewayWithOptions(MockOptions{
		InitiateLatency: cfg.InitiateLatency,
		StatusLatency:   cfg.StatusLatency,
		Expiry:          cfg.Expiry,
		GatewayBaseURL:  cfg.GatewayBaseURL,
		QRBaseURL:       cfg.QRBaseURL,
		Rand:            rand.New(rand.NewPCG(seed, seed>>1|1)),
	})
}

func NewMockGatewayWithOptions(opts MockOptions) *MockGateway {
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Expiry <= 0 {
		opts.Expiry = 24 * time.Hour
	}
	opts.GatewayBaseURL = strings.TrimRight(opts.GatewayBaseURL, "/")
	opts.QRBaseURL = strings.TrimRight(opts.QRBaseURL, "/")
	return &MockGateway{opts: opts, rnd: opts.Rand}
}

func (g *MockGateway) Initiate(ctx context.Context, req InitiateRequest) (Transaction, error) {
	if err := wait(ctx, g.opts.InitiateLatency); err != nil {
		return Transaction{}, err
	}

	id := g.transactionID()
	tx := Transaction{
		TransactionID: id,
		PaymentURL:    fmt.Sprintf("%s/%s", g.opts.GatewayBaseURL, id),
		ExpiresAt:     g.opts.Now().UTC().Add(g.opts.Expiry),
	}
	if req.Method == enums.PaymentMethodEWallet {
		tx.QRCode = fmt.Sprintf("%s/%s", g.opts.QRBaseURL, id)
	}
	if req.Method == enums.PaymentMethodBankTransfer {
		tx.AccountNumber = mockAccountNumber
	}
	return tx, nil
}

func (g *MockGateway) Status(ctx context.Context, transactionID string) (enums.PaymentStatus, error) {
	if err := wait(ctx, g.opts.StatusLatency); err != nil {
		return "", err
	}
	statuses := enums.PaymentStatuses()

	g.mu.Lock()
	idx := g.rnd.IntN(len(statuses))
	g.mu.Unlock()
	return statuses[idx], nil
}

func (g *MockGateway) transactionID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	var b strings.Builder
	b.Grow(transactionIDLength)
	for i := 0; i < transactionIDLength; i++ {
		b.WriteByte(base36Alphabet[g.rnd.IntN(len(base36Alphabet))])
	}
	return b.String()
}

// wait sleeps for d unless ctx ends first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
