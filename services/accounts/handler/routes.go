package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/adityaw/fraudlens/services/accounts/handler/http"
)

// Handler coordinates the account service handlers
type Handler struct {
	authHandler *http.AuthHandler
}

// NewHandler creates and initializes the account handlers
func NewHandler(authHandler *http.AuthHandler) *Handler {
	return &Handler{authHandler: authHandler}
}

// RegisterRoutes registers the public account routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.authHandler.Home)
	e.GET("/register", h.authHandler.RegisterPage)
	e.POST("/register", h.authHandler.Register)
	e.GET("/login", h.authHandler.LoginPage)
	e.POST("/login", h.authHandler.Login)
	e.GET("/logout", h.authHandler.Logout)
}
