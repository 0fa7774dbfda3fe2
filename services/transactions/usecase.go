package transactions

import (
	"context"

	"github.com/adityaw/fraudlens/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adityaw/fraudlens/services/transactions TransactionUC

// TransactionUC represents the transaction usecase interface
type TransactionUC interface {
	Predict(ctx context.Context, userID int64, input *models.TransactionInput) (*models.PredictionResponse, error)
	ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
}
