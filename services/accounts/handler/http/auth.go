package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adityaw/fraudlens/internal/pkg/apperrors"
	"github.com/adityaw/fraudlens/internal/pkg/logger"
	"github.com/adityaw/fraudlens/internal/pkg/models"
	"github.com/adityaw/fraudlens/internal/pkg/session"
	"github.com/adityaw/fraudlens/internal/utils"
	"github.com/adityaw/fraudlens/services/accounts"
)

// AuthHandler handles the registration and login pages
type AuthHandler struct {
	accountUC accounts.AccountUC
	sessions  *session.Manager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountUC accounts.AccountUC, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		accountUC: accountUC,
		sessions:  sessions,
	}
}

// Home redirects the root path to the login form
func (h *AuthHandler) Home(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/login")
}

// RegisterPage renders the registration form
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", map[string]interface{}{
		"Flash": utils.PopFlash(c, h.sessions.CookieSecure()),
	})
}

// Register handles the registration form submission
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		utils.SetFlash(c, "Invalid form submission", "danger", h.sessions.CookieSecure())
		return c.Redirect(http.StatusFound, "/register")
	}

	_, err := h.accountUC.Register(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEmailTaken):
			utils.SetFlash(c, "Email already in use", "danger", h.sessions.CookieSecure())
		case errors.Is(err, apperrors.ErrInvalidInput):
			utils.SetFlash(c, "All fields are required", "danger", h.sessions.CookieSecure())
		default:
			logger.Error("Failed to register account", logger.Err(err))
			utils.SetFlash(c, "Registration failed, please try again", "danger", h.sessions.CookieSecure())
		}
		return c.Redirect(http.StatusFound, "/register")
	}

	utils.SetFlash(c, "Account created successfully", "success", h.sessions.CookieSecure())
	return c.Redirect(http.StatusFound, "/login")
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", map[string]interface{}{
		"Flash": utils.PopFlash(c, h.sessions.CookieSecure()),
	})
}

// Login handles the login form submission and establishes the session
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		utils.SetFlash(c, "Invalid form submission", "danger", h.sessions.CookieSecure())
		return c.Redirect(http.StatusFound, "/login")
	}

	user, err := h.accountUC.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			logger.Error("Failed to authenticate account", logger.Err(err))
		}
		utils.SetFlash(c, "Incorrect email or password", "danger", h.sessions.CookieSecure())
		return c.Redirect(http.StatusFound, "/login")
	}

	if err := h.sessions.Start(c, user); err != nil {
		logger.Error("Failed to start session", logger.Err(err), logger.Int64("user_id", user.ID))
		utils.SetFlash(c, "Login failed, please try again", "danger", h.sessions.CookieSecure())
		return c.Redirect(http.StatusFound, "/login")
	}

	return c.Redirect(http.StatusFound, "/transaction")
}

// Logout clears the session and returns to the login form
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.End(c); err != nil {
		logger.Warn("Failed to end session", logger.Err(err))
	}
	return c.Redirect(http.StatusFound, "/login")
}
