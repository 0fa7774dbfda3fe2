package session

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityaw/fraudlens/internal/pkg/apperrors"
	"github.com/adityaw/fraudlens/internal/pkg/models"
)

// memoryStore is an in-memory Store for tests
type memoryStore struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *memoryStore) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	s.values[key] = fmt.Sprintf("%s", value)
	s.ttls[key] = expiration
	return nil
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("key not found")
	}
	return value, nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

func testConfig() models.SessionConfig {
	return models.SessionConfig{
		Secret:     "test-secret",
		TTLMinutes: 60,
		CookieName: "session_token",
	}
}

func testUser() *models.User {
	return &models.User{ID: 42, Username: "alice", Email: "alice@example.com"}
}

func newContext(e *echo.Echo, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "session_token" {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestStartAndResolve(t *testing.T) {
	e := echo.New()
	store := newMemoryStore()
	manager := NewManager(testConfig(), store)

	c, rec := newContext(e)
	require.NoError(t, manager.Start(c, testUser()))

	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	// Server-side record exists with the configured TTL
	require.Len(t, store.values, 1)
	for key := range store.ttls {
		assert.Equal(t, time.Hour, store.ttls[key])
	}

	// Replay the cookie
	c2, _ := newContext(e, cookie)
	sess, err := manager.Resolve(c2)
	require.NoError(t, err)
	assert.Equal(t, int64(42), sess.UserID)
	assert.Equal(t, "alice", sess.Username)
	assert.NotEmpty(t, sess.ID)
}

func TestTokenCarriesOnlySessionKey(t *testing.T) {
	e := echo.New()
	manager := NewManager(testConfig(), newMemoryStore())

	c, rec := newContext(e)
	require.NoError(t, manager.Start(c, testUser()))
	cookie := sessionCookie(t, rec)

	token, err := jwt.Parse(cookie.Value, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Contains(t, claims, "sid")
	assert.Contains(t, claims, "exp")
	assert.NotContains(t, claims, "user_id")
	assert.NotContains(t, claims, "username")
}

func TestResolveWithoutCookie(t *testing.T) {
	e := echo.New()
	manager := NewManager(testConfig(), newMemoryStore())

	c, _ := newContext(e)
	sess, err := manager.Resolve(c)
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestResolveTamperedToken(t *testing.T) {
	e := echo.New()
	store := newMemoryStore()
	manager := NewManager(testConfig(), store)

	c, rec := newContext(e)
	require.NoError(t, manager.Start(c, testUser()))
	cookie := sessionCookie(t, rec)

	// A token signed with a different secret must be rejected even
	// though the server-side record still exists
	other := NewManager(models.SessionConfig{
		Secret:     "other-secret",
		TTLMinutes: 60,
		CookieName: "session_token",
	}, store)

	otherCtx, otherRec := newContext(e)
	require.NoError(t, other.Start(otherCtx, testUser()))
	forged := sessionCookie(t, otherRec)

	c2, _ := newContext(e, forged)
	sess, err := manager.Resolve(c2)
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	// The legitimate cookie still resolves
	c3, _ := newContext(e, cookie)
	_, err = manager.Resolve(c3)
	assert.NoError(t, err)
}

func TestEndRevokesSession(t *testing.T) {
	e := echo.New()
	store := newMemoryStore()
	manager := NewManager(testConfig(), store)

	c, rec := newContext(e)
	require.NoError(t, manager.Start(c, testUser()))
	cookie := sessionCookie(t, rec)

	c2, rec2 := newContext(e, cookie)
	require.NoError(t, manager.End(c2))

	// Record deleted and cookie cleared
	assert.Empty(t, store.values)
	cleared := sessionCookie(t, rec2)
	assert.Equal(t, -1, cleared.MaxAge)

	// The old cookie no longer resolves
	c3, _ := newContext(e, cookie)
	sess, err := manager.Resolve(c3)
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestEndWithoutSession(t *testing.T) {
	e := echo.New()
	manager := NewManager(testConfig(), newMemoryStore())

	c, rec := newContext(e)
	require.NoError(t, manager.End(c))
	assert.Equal(t, -1, sessionCookie(t, rec).MaxAge)
}
