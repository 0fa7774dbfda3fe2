// Package features maps categorical transaction fields to the fixed
// integer codes the classifier was trained on. The tables are frozen at
// build time and must stay in sync with the model artifact.
package features

import (
	"fmt"

	"github.com/adityaw/fraudlens/internal/pkg/apperrors"
	"github.com/adityaw/fraudlens/internal/pkg/models"
)

// VectorLen is the fixed length of an encoded feature vector
const VectorLen = 7

var transactionTypeCodes = map[string]int{
	"Purchase":   0,
	"Withdrawal": 1,
	"Transfer":   2,
}

var locationCodes = map[string]int{
	"Chicago":     0,
	"Houston":     1,
	"Los Angeles": 2,
	"Miami":       3,
	"New York":    4,
}

var deviceTypeCodes = map[string]int{
	"Mobile": 0,
	"Laptop": 1,
	"ATM":    2,
}

var timeOfDayCodes = map[string]int{
	"Morning":   0,
	"Afternoon": 1,
	"Evening":   2,
	"Night":     3,
}

// Encode converts a transaction input into the fixed-order feature vector
// [amount, type, location, device, time, previous_fraud, transaction_speed].
// Any categorical value missing from its table yields ErrUnknownCategory.
func Encode(input *models.TransactionInput) ([]float64, error) {
	typeCode, ok := transactionTypeCodes[input.TransactionType]
	if !ok {
		return nil, fmt.Errorf("%w: transaction_type %q", apperrors.ErrUnknownCategory, input.TransactionType)
	}

	locationCode, ok := locationCodes[input.Location]
	if !ok {
		return nil, fmt.Errorf("%w: location %q", apperrors.ErrUnknownCategory, input.Location)
	}

	deviceCode, ok := deviceTypeCodes[input.DeviceType]
	if !ok {
		return nil, fmt.Errorf("%w: device_type %q", apperrors.ErrUnknownCategory, input.DeviceType)
	}

	timeCode, ok := timeOfDayCodes[input.TimeOfDay]
	if !ok {
		return nil, fmt.Errorf("%w: time_of_day %q", apperrors.ErrUnknownCategory, input.TimeOfDay)
	}

	return []float64{
		input.Amount,
		float64(typeCode),
		float64(locationCode),
		float64(deviceCode),
		float64(timeCode),
		float64(input.PreviousFraud),
		input.TransactionSpeed,
	}, nil
}
