package analytics

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adityaw/fraudlens/services/analytics AnalyticsUC

// AnalyticsUC represents the analytics usecase interface
type AnalyticsUC interface {
	GenerateCharts(ctx context.Context, userID int64) ([]json.RawMessage, error)
}
