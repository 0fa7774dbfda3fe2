package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adityaw/fraudlens/internal/pkg/apperrors"
	"github.com/adityaw/fraudlens/internal/pkg/logger"
	"github.com/adityaw/fraudlens/internal/pkg/middleware"
	"github.com/adityaw/fraudlens/internal/pkg/models"
	"github.com/adityaw/fraudlens/internal/pkg/session"
	"github.com/adityaw/fraudlens/internal/utils"
	"github.com/adityaw/fraudlens/services/transactions"
)

// TransactionHandler handles the transaction page and scoring endpoints
type TransactionHandler struct {
	txnUC    transactions.TransactionUC
	sessions *session.Manager
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txnUC transactions.TransactionUC, sessions *session.Manager) *TransactionHandler {
	return &TransactionHandler{
		txnUC:    txnUC,
		sessions: sessions,
	}
}

// TransactionPage renders the transaction entry form
func (h *TransactionHandler) TransactionPage(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	return c.Render(http.StatusOK, "transaction.html", map[string]interface{}{
		"Username": sess.Username,
		"Flash":    utils.PopFlash(c, h.sessions.CookieSecure()),
	})
}

// Predict scores a submitted transaction and stores it with the result
func (h *TransactionHandler) Predict(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	var input models.TransactionInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.txnUC.Predict(c.Request().Context(), sess.UserID, &input)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownCategory), errors.Is(err, apperrors.ErrInvalidInput):
			return utils.BadRequestResponse(c, err.Error())
		default:
			logger.Error("Failed to score transaction", logger.Err(err), logger.Int64("user_id", sess.UserID))
			return utils.InternalServerErrorResponse(c, "Failed to process transaction")
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// ListTransactions returns the session user's transaction history, newest
// first
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	txns, err := h.txnUC.ListTransactions(c.Request().Context(), sess.UserID)
	if err != nil {
		logger.Error("Failed to list transactions", logger.Err(err), logger.Int64("user_id", sess.UserID))
		return utils.InternalServerErrorResponse(c, "Failed to load transactions")
	}

	return c.JSON(http.StatusOK, txns)
}

// APITransactions serves the chart data feed. It resolves the session
// itself: without one it returns an empty list rather than an error.
func (h *TransactionHandler) APITransactions(c echo.Context) error {
	sess, err := h.sessions.Resolve(c)
	if err != nil {
		return c.JSON(http.StatusOK, []models.TransactionSummary{})
	}

	txns, err := h.txnUC.ListTransactions(c.Request().Context(), sess.UserID)
	if err != nil {
		logger.Error("Failed to load chart data", logger.Err(err), logger.Int64("user_id", sess.UserID))
		return utils.InternalServerErrorResponse(c, "Failed to load transactions")
	}

	summaries := make([]models.TransactionSummary, 0, len(txns))
	for i := range txns {
		summaries = append(summaries, txns[i].Summary())
	}

	return c.JSON(http.StatusOK, summaries)
}
