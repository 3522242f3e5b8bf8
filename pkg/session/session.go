package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNoSession is returned when a session id is unknown or expired.
var ErrNoSession = errors.New("no session")

// Store is the durable backing for issued sessions, keyed by session id.
// Implementations must expire entries after the TTL passed to Save.
type Store interface {
	Save(ctx context.Context, id string, userID uuid.UUID, ttl time.Duration) error
	Get(ctx context.Context, id string) (uuid.UUID, error)
	Delete(ctx context.Context, id string) error
}

// Manager issues and revokes sessions and owns the cookie contract.
type Manager struct {
	store Store
	ttl   time.Duration
}

// CookieName is the session cookie set on login/registration.
const CookieName = "sid"

func NewManager(store Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{store: store, ttl: ttl}
}

// TTL reports the configured session lifetime.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue creates a new session bound to the user and returns its id.
func (m *Manager) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	id := uuid.NewString()
	if err := m.store.Save(ctx, id, userID, m.ttl); err != nil {
		return "", err
	}
	return id, nil
}

// Resolve maps a session id to its owner, or ErrNoSession.
func (m *Manager) Resolve(ctx context.Context, id string) (uuid.UUID, error) {
	if id == "" {
		return uuid.Nil, ErrNoSession
	}
	return m.store.Get(ctx, id)
}

// Revoke destroys the session; the id is unusable immediately after.
func (m *Manager) Revoke(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return m.store.Delete(ctx, id)
}
