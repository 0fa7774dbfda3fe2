package transactions

import (
	"context"

	"github.com/adityaw/fraudlens/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/adityaw/fraudlens/services/transactions TransactionRepo

// TransactionRepo represents the transaction repository interface
type TransactionRepo interface {
	Record(ctx context.Context, txn *models.Transaction) error
	ListByUser(ctx context.Context, userID int64) ([]models.Transaction, error)
}
