package models

import (
	"time"
)

// Transaction represents a scored transaction record. Prediction and
// fraud probability are written together with the input fields in a
// single insert; a row is never stored unscored.
type Transaction struct {
	ID               int64     `json:"id" db:"id"`
	Amount           float64   `json:"amount" db:"amount"`
	TransactionType  string    `json:"transaction_type" db:"transaction_type"`
	Location         string    `json:"location" db:"location"`
	DeviceType       string    `json:"device_type" db:"device_type"`
	TimeOfDay        string    `json:"time_of_day" db:"time_of_day"`
	PreviousFraud    int       `json:"previous_fraud" db:"previous_fraud"`
	TransactionSpeed float64   `json:"transaction_speed" db:"transaction_speed"`
	Prediction       int       `json:"prediction" db:"prediction"`
	FraudProbability float64   `json:"fraud_probability" db:"fraud_probability"`
	UserID           int64     `json:"-" db:"user_id"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// TransactionInput is the /predict request payload
type TransactionInput struct {
	Amount           float64 `json:"Amount"`
	TransactionType  string  `json:"TransactionType"`
	Location         string  `json:"Location"`
	DeviceType       string  `json:"DeviceType"`
	TimeOfDay        string  `json:"TimeOfDay"`
	PreviousFraud    int     `json:"PreviousFraud"`
	TransactionSpeed float64 `json:"TransactionSpeed"`
}

// PredictionResponse is the /predict response payload
type PredictionResponse struct {
	Prediction       int     `json:"prediction"`
	FraudProbability float64 `json:"fraud_probability"`
}

// TransactionSummary is the reduced row shape served by /api/transactions
type TransactionSummary struct {
	Amount           float64 `json:"Amount"`
	TransactionType  string  `json:"TransactionType"`
	Location         string  `json:"Location"`
	DeviceType       string  `json:"DeviceType"`
	TimeOfDay        string  `json:"TimeOfDay"`
	PreviousFraud    int     `json:"PreviousFraud"`
	TransactionSpeed float64 `json:"TransactionSpeed"`
	Prediction       int     `json:"Prediction"`
}

// Summary converts a stored transaction to its API summary shape
func (t *Transaction) Summary() TransactionSummary {
	return TransactionSummary{
		Amount:           t.Amount,
		TransactionType:  t.TransactionType,
		Location:         t.Location,
		DeviceType:       t.DeviceType,
		TimeOfDay:        t.TimeOfDay,
		PreviousFraud:    t.PreviousFraud,
		TransactionSpeed: t.TransactionSpeed,
		Prediction:       t.Prediction,
	}
}
