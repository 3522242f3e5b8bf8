package session

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	entries map[string]entry
}

type entry struct {
	userID    uuid.UUID
	expiresAt time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: map[string]entry{}}
}

func (s *memoryStore) Save(_ context.Context, id string, userID uuid.UUID, ttl time.Duration) error {
	s.entries[id] = entry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *memoryStore) Get(_ context.Context, id string) (uuid.UUID, error) {
	e, ok := s.entries[id]
	if !ok || time.Now().After(e.expiresAt) {
		return uuid.Nil, ErrNoSession
	}
	return e.userID, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	delete(s.entries, id)
	return nil
}

func TestManager_IssueResolveRevoke(t *testing.T) {
	m := NewManager(newMemoryStore(), time.Hour)
	userID := uuid.New()

	sid, err := m.Issue(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	got, err := m.Resolve(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	require.NoError(t, m.Revoke(context.Background(), sid))

	// Revoked ids are unusable immediately.
	_, err = m.Resolve(context.Background(), sid)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManager_ResolveEmptyID(t *testing.T) {
	m := NewManager(newMemoryStore(), time.Hour)

	_, err := m.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManager_ExpiredSession(t *testing.T) {
	m := NewManager(newMemoryStore(), time.Millisecond)
	sid, err := m.Issue(context.Background(), uuid.New())
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = m.Resolve(context.Background(), sid)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRequireAuth(t *testing.T) {
	m := NewManager(newMemoryStore(), time.Hour)
	userID := uuid.New()
	sid, err := m.Issue(context.Background(), userID)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/protected", RequireAuth(m), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("userId").(string))
	})

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown session", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "bogus"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid session", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: sid})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), string(body))
	})

	t.Run("revoked session", func(t *testing.T) {
		require.NoError(t, m.Revoke(context.Background(), sid))
		req := httptest.NewRequest("GET", "/protected", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: sid})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
