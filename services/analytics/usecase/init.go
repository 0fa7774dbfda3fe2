package usecase

import (
	"math/rand"
	"sync"
	"time"

	"github.com/adityaw/fraudlens/internal/pkg/models"
	"github.com/adityaw/fraudlens/services/analytics"
)

type AnalyticsUC struct {
	txnRepo analytics.TransactionRepo
	cfg     *models.Config

	// rngMu guards rng; rand.Rand is not safe for concurrent use and
	// requests run on concurrent goroutines
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewAnalyticsUC creates a new analytics usecase instance. Column
// selection is randomized per call; charts over the same history are
// deliberately not reproducible.
func NewAnalyticsUC(txnRepo analytics.TransactionRepo, cfg *models.Config) *AnalyticsUC {
	return &AnalyticsUC{
		txnRepo: txnRepo,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}
