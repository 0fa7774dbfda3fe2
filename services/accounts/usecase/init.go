package usecase

import (
	"github.com/adityaw/fraudlens/internal/pkg/models"
	"github.com/adityaw/fraudlens/services/accounts"
)

type AccountUC struct {
	userRepo accounts.UserRepo
	cfg      *models.Config
}

// NewAccountUC creates a new account usecase instance
func NewAccountUC(userRepo accounts.UserRepo, cfg *models.Config) *AccountUC {
	return &AccountUC{
		userRepo: userRepo,
		cfg:      cfg,
	}
}
