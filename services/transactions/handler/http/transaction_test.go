package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityaw/fraudlens/internal/pkg/apperrors"
	"github.com/adityaw/fraudlens/internal/pkg/middleware"
	"github.com/adityaw/fraudlens/internal/pkg/models"
	"github.com/adityaw/fraudlens/internal/pkg/session"
	"github.com/adityaw/fraudlens/services/transactions/mocks"
)

type memoryStore struct {
	values map[string]string
}

func (s *memoryStore) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	s.values[key] = fmt.Sprintf("%s", value)
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

func newSessionManager() *session.Manager {
	return session.NewManager(models.SessionConfig{
		Secret:     "test-secret",
		TTLMinutes: 30,
		CookieName: "session_token",
	}, &memoryStore{values: map[string]string{}})
}

func postJSON(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withSession(c echo.Context, userID int64) {
	c.Set(middleware.SessionContextKey, &session.Session{
		ID:       "test-session",
		UserID:   userID,
		Username: "alice",
	})
}

func TestPredict_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC, newSessionManager())

	mockUC.EXPECT().
		Predict(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, input *models.TransactionInput) (*models.PredictionResponse, error) {
			assert.Equal(t, "Purchase", input.TransactionType)
			assert.Equal(t, 120.5, input.Amount)
			return &models.PredictionResponse{Prediction: 1, FraudProbability: 0.75}, nil
		})

	c, rec := postJSON("/predict", `{
		"Amount": 120.5,
		"TransactionType": "Purchase",
		"Location": "Miami",
		"DeviceType": "Mobile",
		"TimeOfDay": "Night",
		"PreviousFraud": 0,
		"TransactionSpeed": 3.2
	}`)
	withSession(c, 7)

	require.NoError(t, handler.Predict(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.PredictionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Prediction)
	assert.Equal(t, 0.75, resp.FraudProbability)
}

func TestPredict_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC, newSessionManager())

	c, rec := postJSON("/predict", `{"Amount": not-json`)
	withSession(c, 7)

	require.NoError(t, handler.Predict(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request payload")
}

func TestPredict_UnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC, newSessionManager())

	mockUC.EXPECT().
		Predict(gomock.Any(), int64(7), gomock.Any()).
		Return(nil, fmt.Errorf("transaction_type %q: %w", "Bribe", apperrors.ErrUnknownCategory))

	c, rec := postJSON("/predict", `{"Amount": 10, "TransactionType": "Bribe"}`)
	withSession(c, 7)

	require.NoError(t, handler.Predict(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredict_UsecaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC, newSessionManager())

	mockUC.EXPECT().
		Predict(gomock.Any(), int64(7), gomock.Any()).
		Return(nil, fmt.Errorf("db down"))

	c, rec := postJSON("/predict", `{"Amount": 10, "TransactionType": "Purchase"}`)
	withSession(c, 7)

	require.NoError(t, handler.Predict(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestListTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC, newSessionManager())

	mockUC.EXPECT().
		ListTransactions(gomock.Any(), int64(7)).
		Return([]models.Transaction{
			{ID: 2, TransactionType: "Transfer", Prediction: 1},
			{ID: 1, TransactionType: "Purchase", Prediction: 0},
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withSession(c, 7)

	require.NoError(t, handler.ListTransactions(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []models.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[0].ID)
}

func TestAPITransactions_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC, newSessionManager())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.APITransactions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestAPITransactions_WithSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	manager := newSessionManager()
	handler := NewTransactionHandler(mockUC, manager)

	// Establish a session so the response carries the cookie
	e := echo.New()
	loginRec := httptest.NewRecorder()
	loginCtx := e.NewContext(httptest.NewRequest(http.MethodPost, "/login", nil), loginRec)
	require.NoError(t, manager.Start(loginCtx, &models.User{ID: 7, Username: "alice"}))

	mockUC.EXPECT().
		ListTransactions(gomock.Any(), int64(7)).
		Return([]models.Transaction{
			{ID: 1, TransactionType: "Purchase", Location: "Miami", Prediction: 1, FraudProbability: 0.9},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	for _, cookie := range loginRec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.APITransactions(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []models.TransactionSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Purchase", rows[0].TransactionType)
	assert.Equal(t, 1, rows[0].Prediction)
}
