// Package session implements the server-side session gate. The client
// holds an HS256-signed cookie token; its sid claim keys a Redis record
// that is the authoritative proof of authentication. Deleting the
// record revokes the session before the token expires.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/adityaw/fraudlens/internal/pkg/apperrors"
	"github.com/adityaw/fraudlens/internal/pkg/models"
)

const keyPrefix = "session:"

// Session identifies the logged-in user for one browser session
type Session struct {
	ID       string `json:"-"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// Store is the server-side session record store
type Store interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Manager issues, resolves, and revokes sessions
type Manager struct {
	cfg   models.SessionConfig
	store Store
}

// NewManager creates a session manager
func NewManager(cfg models.SessionConfig, store Store) *Manager {
	return &Manager{cfg: cfg, store: store}
}

// TTL returns the configured session lifetime
func (m *Manager) TTL() time.Duration {
	return time.Duration(m.cfg.TTLMinutes) * time.Minute
}

// CookieSecure reports whether cookies should carry the Secure
// attribute; other cookies on the surface follow the same setting
func (m *Manager) CookieSecure() bool {
	return m.cfg.CookieSecure
}

// Start creates a server-side session record for the user and sets the
// signed session cookie on the response
func (m *Manager) Start(c echo.Context, user *models.User) error {
	sid := uuid.NewString()
	ttl := m.TTL()
	expiresAt := time.Now().Add(ttl)

	record := Session{UserID: user.ID, Username: user.Username}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode session record: %w", err)
	}

	if err := m.store.Set(c.Request().Context(), keyPrefix+sid, payload, ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	// The token is an opaque session key; user identity lives only in
	// the server-side record
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Resolve validates the session cookie and looks up the server-side
// record. Any failure maps to ErrUnauthenticated.
func (m *Manager) Resolve(c echo.Context) (*Session, error) {
	cookie, err := c.Cookie(m.cfg.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	sid, err := m.parseSessionID(cookie.Value)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	payload, err := m.store.Get(c.Request().Context(), keyPrefix+sid)
	if err != nil {
		// Record expired or revoked
		return nil, apperrors.ErrUnauthenticated
	}

	var sess Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	sess.ID = sid

	return &sess, nil
}

// End revokes the session record and clears the cookie
func (m *Manager) End(c echo.Context) error {
	if cookie, err := c.Cookie(m.cfg.CookieName); err == nil && cookie.Value != "" {
		if sid, err := m.parseSessionID(cookie.Value); err == nil {
			if err := m.store.Delete(c.Request().Context(), keyPrefix+sid); err != nil {
				return fmt.Errorf("failed to delete session: %w", err)
			}
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (m *Manager) parseSessionID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.ErrUnauthenticated
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", apperrors.ErrUnauthenticated
	}

	return sid, nil
}
