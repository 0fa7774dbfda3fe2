package analytics

import (
	"context"

	"github.com/adityaw/fraudlens/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/adityaw/fraudlens/services/analytics TransactionRepo

// TransactionRepo is the slice of the transaction store the chart
// generator reads from
type TransactionRepo interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Transaction, error)
}
