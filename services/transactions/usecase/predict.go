package usecase

import (
	"context"
	"fmt"

	"github.com/adityaw/fraudlens/internal/pkg/apperrors"
	"github.com/adityaw/fraudlens/internal/pkg/features"
	"github.com/adityaw/fraudlens/internal/pkg/logger"
	"github.com/adityaw/fraudlens/internal/pkg/models"
)

// Predict validates and encodes the input, scores it against the loaded
// classifier, and records the transaction with its result in a single
// insert.
func (u *TransactionUC) Predict(ctx context.Context, userID int64, input *models.TransactionInput) (*models.PredictionResponse, error) {
	if input.PreviousFraud != 0 && input.PreviousFraud != 1 {
		return nil, fmt.Errorf("%w: PreviousFraud must be 0 or 1", apperrors.ErrInvalidInput)
	}

	vector, err := features.Encode(input)
	if err != nil {
		return nil, err
	}

	label, probability, err := u.forest.Predict(vector)
	if err != nil {
		return nil, fmt.Errorf("failed to score transaction: %w", err)
	}

	txn := &models.Transaction{
		Amount:           input.Amount,
		TransactionType:  input.TransactionType,
		Location:         input.Location,
		DeviceType:       input.DeviceType,
		TimeOfDay:        input.TimeOfDay,
		PreviousFraud:    input.PreviousFraud,
		TransactionSpeed: input.TransactionSpeed,
		Prediction:       label,
		FraudProbability: probability,
		UserID:           userID,
	}

	if err := u.txnRepo.Record(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	logger.Info("Scored transaction",
		logger.Int64("user_id", userID),
		logger.Int64("transaction_id", txn.ID),
		logger.Int("prediction", label),
		logger.Float64("fraud_probability", probability))

	return &models.PredictionResponse{
		Prediction:       label,
		FraudProbability: probability,
	}, nil
}

// ListTransactions returns the user's transactions, newest first
func (u *TransactionUC) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	txns, err := u.txnRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}
