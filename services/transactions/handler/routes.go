package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/adityaw/fraudlens/internal/pkg/middleware"
	"github.com/adityaw/fraudlens/internal/pkg/session"
	"github.com/adityaw/fraudlens/services/transactions/handler/http"
)

// Handler coordinates the transaction service handlers
type Handler struct {
	txnHandler *http.TransactionHandler
	sessions   *session.Manager
}

// NewHandler creates and initializes the transaction handlers
func NewHandler(txnHandler *http.TransactionHandler, sessions *session.Manager) *Handler {
	return &Handler{
		txnHandler: txnHandler,
		sessions:   sessions,
	}
}

// RegisterRoutes registers the transaction routes. Page routes redirect
// to the login form when unauthenticated; JSON routes return 401. The
// chart data feed is open and degrades to an empty list.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	browser := middleware.BrowserSessionAuth(h.sessions)
	api := middleware.APISessionAuth(h.sessions)

	e.GET("/transaction", h.txnHandler.TransactionPage, browser)
	e.POST("/predict", h.txnHandler.Predict, api)
	e.GET("/transactions", h.txnHandler.ListTransactions, api)
	e.GET("/api/transactions", h.txnHandler.APITransactions)
}
