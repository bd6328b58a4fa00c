package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
	"github.com/rasanusantara/storefront/pkg/logger"
	"github.com/rasanusantara/storefront/pkg/redis"
)

// Blob names under rn:session:<sid>:<name>.
const (
	KeyCart          = "cart"
	KeyCheckout      = "checkout"
	KeyWishlist      = "wishlist"
	KeyNotifications = "notifications"
	KeyPayment       = "payment"
)

// AllKeys lists every blob a session can hold.
var AllKeys = []string{KeyCart, KeyCheckout, KeyWishlist, KeyNotifications, KeyPayment}

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// Store persists per-session state as versioned JSON blobs.
type Store struct {
	kv   redis.SessionStore
	ttl  time.Duration
	logg *logger.Logger
}

// NewStore wires the blob store. A zero ttl keeps blobs forever.
func NewStore(kv redis.SessionStore, ttl time.Duration, logg *logger.Logger) (*Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("session kv store required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &Store{kv: kv, ttl: ttl, logg: logg}, nil
}

// Load decodes the blob name for sessionID. A missing blob, an unknown
// version or an undecodable payload all yield defaults(); the latter two are
// logged so stale state is visible.
func Load[T any](ctx context.Context, s *Store, sessionID, name string, version int, defaults func() T) (T, error) {
	raw, err := s.kv.Get(ctx, s.kv.SessionKey(sessionID, name))
	if err != nil {
		if redis.IsNil(err) {
			return defaults(), nil
		}
		var zero T
		return zero, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session state")
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		s.reset(ctx, sessionID, name, "session blob undecodable, using defaults", err)
		return defaults(), nil
	}
	if env.Version != version {
		s.reset(ctx, sessionID, name, fmt.Sprintf("session blob version %d unsupported (want %d), using defaults", env.Version, version), nil)
		return defaults(), nil
	}

	value := defaults()
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &value); err != nil {
			s.reset(ctx, sessionID, name, "session blob payload undecodable, using defaults", err)
			return defaults(), nil
		}
	}
	return value, nil
}

// Save writes value as the current version of blob name.
func Save[T any](ctx context.Context, s *Store, sessionID, name string, version int, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode session state")
	}
	raw, err := json.Marshal(envelope{Version: version, Data: data})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode session envelope")
	}
	if err := s.kv.Set(ctx, s.kv.SessionKey(sessionID, name), string(raw), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save session state")
	}
	return nil
}

// Delete drops the named blobs; with no names every blob of the session goes.
func (s *Store) Delete(ctx context.Context, sessionID string, names ...string) error {
	if len(names) == 0 {
		names = AllKeys
	}
	keys := make([]string, 0, len(names))
	for _, name := range names {
		keys = append(keys, s.kv.SessionKey(sessionID, name))
	}
	if err := s.kv.Del(ctx, keys...); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete session state")
	}
	return nil
}

func (s *Store) reset(ctx context.Context, sessionID, name, msg string, cause error) {
	ctx = s.logg.WithFields(ctx, map[string]any{"session_id": sessionID, "blob": name})
	if cause != nil {
		ctx = s.logg.WithField(ctx, "cause", cause.Error())
	}
	s.logg.Warn(ctx, msg)
}
