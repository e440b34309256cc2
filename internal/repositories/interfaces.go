package repositories

import (
	"context"

	"call2fa/internal/models"
)

// CallRepository stores calls created through the stub API.
type CallRepository interface {
	NextID(ctx context.Context) string
	Create(ctx context.Context, call *models.Call) error
	FindByID(ctx context.Context, id string) (*models.Call, error)
}

// AccountRepository defines the interface for account lookups
type AccountRepository interface {
	FindByLogin(ctx context.Context, login string) (*models.Account, error)
}
