package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/adityaw/fraudlens/internal/pkg/middleware"
	"github.com/adityaw/fraudlens/internal/pkg/session"
	"github.com/adityaw/fraudlens/services/analytics/handler/http"
)

// Handler coordinates the analytics service handlers
type Handler struct {
	analyticsHandler *http.AnalyticsHandler
	sessions         *session.Manager
}

// NewHandler creates and initializes the analytics handlers
func NewHandler(analyticsHandler *http.AnalyticsHandler, sessions *session.Manager) *Handler {
	return &Handler{
		analyticsHandler: analyticsHandler,
		sessions:         sessions,
	}
}

// RegisterRoutes registers the analytics page route
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/analyse", h.analyticsHandler.AnalysePage, middleware.BrowserSessionAuth(h.sessions))
}
