package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/adityaw/fraudlens/internal/pkg/models"
)

// TransactionRepo implements transaction persistence on PostgreSQL
type TransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepo creates a new transaction repository instance
func NewTransactionRepo(db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

// Record inserts the transaction input and its prediction result as one
// row. A transaction is never stored without its score.
func (r *TransactionRepo) Record(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (
			amount, transaction_type, location, device_type, time_of_day,
			previous_fraud, transaction_speed, prediction, fraud_probability, user_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		txn.Amount,
		txn.TransactionType,
		txn.Location,
		txn.DeviceType,
		txn.TimeOfDay,
		txn.PreviousFraud,
		txn.TransactionSpeed,
		txn.Prediction,
		txn.FraudProbability,
		txn.UserID,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// ListByUser retrieves the user's transactions, newest first
func (r *TransactionRepo) ListByUser(ctx context.Context, userID int64) ([]models.Transaction, error) {
	query := `
		SELECT id, amount, transaction_type, location, device_type, time_of_day,
			previous_fraud, transaction_speed, prediction, fraud_probability,
			user_id, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	txns := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &txns, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txns, nil
}
