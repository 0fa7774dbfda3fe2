package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adityaw/fraudlens/internal/pkg/session"
	"github.com/adityaw/fraudlens/internal/utils"
)

// SessionContextKey is where the resolved session is stored on the Echo context
const SessionContextKey = "session"

// BrowserSessionAuth gates page routes; unauthenticated requests are
// redirected to the login form
func BrowserSessionAuth(manager *session.Manager) echo.MiddlewareFunc {
	return sessionAuth(manager, func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/login")
	})
}

// APISessionAuth gates JSON routes; unauthenticated requests receive a
// 401 error body
func APISessionAuth(manager *session.Manager) echo.MiddlewareFunc {
	return sessionAuth(manager, func(c echo.Context) error {
		return utils.UnauthorizedResponse(c, "Not logged in")
	})
}

func sessionAuth(manager *session.Manager, reject echo.HandlerFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := manager.Resolve(c)
			if err != nil {
				return reject(c)
			}

			c.Set(SessionContextKey, sess)
			c.Set("user_id", sess.UserID)

			return next(c)
		}
	}
}

// SessionFromContext returns the session placed on the context by the
// auth middleware, or nil outside a gated route
func SessionFromContext(c echo.Context) *session.Session {
	sess, _ := c.Get(SessionContextKey).(*session.Session)
	return sess
}
