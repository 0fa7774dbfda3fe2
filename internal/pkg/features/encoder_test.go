package features

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityaw/fraudlens/internal/pkg/apperrors"
	"github.com/adityaw/fraudlens/internal/pkg/models"
)

func validInput() *models.TransactionInput {
	return &models.TransactionInput{
		Amount:           120.5,
		TransactionType:  "Purchase",
		Location:         "Miami",
		DeviceType:       "Mobile",
		TimeOfDay:        "Night",
		PreviousFraud:    0,
		TransactionSpeed: 3.2,
	}
}

func TestEncode(t *testing.T) {
	vector, err := Encode(validInput())
	require.NoError(t, err)
	require.Len(t, vector, VectorLen)

	assert.Equal(t, []float64{120.5, 0, 3, 0, 3, 0, 3.2}, vector)
}

func TestEncodeIsDeterministic(t *testing.T) {
	first, err := Encode(validInput())
	require.NoError(t, err)

	second, err := Encode(validInput())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEncodeUnknownCategory(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(input *models.TransactionInput)
	}{
		{
			name:   "unknown transaction type",
			mutate: func(input *models.TransactionInput) { input.TransactionType = "Unknown" },
		},
		{
			name:   "unknown location",
			mutate: func(input *models.TransactionInput) { input.Location = "Springfield" },
		},
		{
			name:   "unknown device type",
			mutate: func(input *models.TransactionInput) { input.DeviceType = "Tablet" },
		},
		{
			name:   "unknown time of day",
			mutate: func(input *models.TransactionInput) { input.TimeOfDay = "Dawn" },
		},
		{
			name:   "empty categorical field",
			mutate: func(input *models.TransactionInput) { input.Location = "" },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(input)

			vector, err := Encode(input)
			assert.Nil(t, vector)
			assert.True(t, errors.Is(err, apperrors.ErrUnknownCategory))
		})
	}
}
