package http

import (
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adityaw/fraudlens/internal/pkg/logger"
	"github.com/adityaw/fraudlens/internal/pkg/middleware"
	"github.com/adityaw/fraudlens/internal/utils"
	"github.com/adityaw/fraudlens/services/analytics"
)

// AnalyticsHandler handles the analytics page
type AnalyticsHandler struct {
	analyticsUC analytics.AnalyticsUC
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsUC analytics.AnalyticsUC) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: analyticsUC}
}

// AnalysePage renders the analytics page with the generated figure
// descriptions embedded for the client-side plotly runtime
func (h *AnalyticsHandler) AnalysePage(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	battery, err := h.analyticsUC.GenerateCharts(c.Request().Context(), sess.UserID)
	if err != nil {
		logger.Error("Failed to generate charts", logger.Err(err), logger.Int64("user_id", sess.UserID))
		return utils.InternalServerErrorResponse(c, "Failed to generate charts")
	}

	// Figures are trusted JSON produced by this process
	figures := make([]template.JS, 0, len(battery))
	for _, payload := range battery {
		figures = append(figures, template.JS(payload))
	}

	return c.Render(http.StatusOK, "analyse.html", map[string]interface{}{
		"Username": sess.Username,
		"Figures":  figures,
	})
}
