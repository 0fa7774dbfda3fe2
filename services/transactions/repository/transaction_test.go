package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityaw/fraudlens/internal/pkg/models"
)

func setupTransactionRepoTest(t *testing.T) (*TransactionRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewTransactionRepo(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func sampleTransaction() *models.Transaction {
	return &models.Transaction{
		Amount:           120.5,
		TransactionType:  "Purchase",
		Location:         "Miami",
		DeviceType:       "Mobile",
		TimeOfDay:        "Night",
		PreviousFraud:    0,
		TransactionSpeed: 3.2,
		Prediction:       0,
		FraudProbability: 0.12,
		UserID:           42,
	}
}

func TestRecord(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, txn *models.Transaction, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "created_at"}).
					AddRow(int64(9), time.Now())
				mock.ExpectQuery("^INSERT INTO transactions").
					WithArgs(120.5, "Purchase", "Miami", "Mobile", "Night", 0, 3.2, 0, 0.12, int64(42)).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, txn *models.Transaction, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(9), txn.ID)
				assert.False(t, txn.CreatedAt.IsZero())
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^INSERT INTO transactions").
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, txn *models.Transaction, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to insert transaction")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTransactionRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			txn := sampleTransaction()
			err := repo.Record(context.Background(), txn)
			tc.assertFunc(t, txn, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListByUser(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	now := time.Now()
	columns := []string{
		"id", "amount", "transaction_type", "location", "device_type", "time_of_day",
		"previous_fraud", "transaction_speed", "prediction", "fraud_probability",
		"user_id", "created_at",
	}
	rows := sqlmock.NewRows(columns).
		AddRow(int64(2), 900.0, "Transfer", "New York", "ATM", "Evening", 1, 7.5, 1, 0.87, int64(42), now).
		AddRow(int64(1), 120.5, "Purchase", "Miami", "Mobile", "Night", 0, 3.2, 0, 0.12, int64(42), now.Add(-time.Hour))

	mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE user_id").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	txns, err := repo.ListByUser(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, txns, 2)

	// Newest first, every row owned by the requesting user
	assert.Equal(t, int64(2), txns[0].ID)
	assert.Equal(t, int64(1), txns[1].ID)
	for _, txn := range txns {
		assert.Equal(t, int64(42), txn.UserID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUserEmpty(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	columns := []string{
		"id", "amount", "transaction_type", "location", "device_type", "time_of_day",
		"previous_fraud", "transaction_speed", "prediction", "fraud_probability",
		"user_id", "created_at",
	}
	mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE user_id").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(columns))

	txns, err := repo.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, txns)
	assert.Empty(t, txns)
	assert.NoError(t, mock.ExpectationsWereMet())
}
