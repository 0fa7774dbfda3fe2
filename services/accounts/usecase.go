package accounts

import (
	"context"

	"github.com/adityaw/fraudlens/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adityaw/fraudlens/services/accounts AccountUC

// AccountUC represents the account usecase interface
type AccountUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}
