package usecase

import (
	"github.com/adityaw/fraudlens/internal/pkg/mlmodel"
	"github.com/adityaw/fraudlens/internal/pkg/models"
	"github.com/adityaw/fraudlens/services/transactions"
)

type TransactionUC struct {
	txnRepo transactions.TransactionRepo
	forest  *mlmodel.Forest
	cfg     *models.Config
}

// NewTransactionUC creates a new transaction usecase instance
func NewTransactionUC(txnRepo transactions.TransactionRepo, forest *mlmodel.Forest, cfg *models.Config) *TransactionUC {
	return &TransactionUC{
		txnRepo: txnRepo,
		forest:  forest,
		cfg:     cfg,
	}
}
