package repositories

import (
	"context"

	"call2fa/internal/models"
	"call2fa/pkg/config"
)

type accountRepository struct {
	accounts map[string]models.Account
}

// NewAccountRepository indexes the accounts from configuration by login.
func NewAccountRepository(accounts []config.Account) AccountRepository {
	repo := &accountRepository{accounts: make(map[string]models.Account, len(accounts))}
	for _, a := range accounts {
		repo.accounts[a.Login] = models.Account{Login: a.Login, PasswordHash: a.PasswordHash}
	}
	return repo
}

func (r *accountRepository) FindByLogin(ctx context.Context, login string) (*models.Account, error) {
	account, ok := r.accounts[login]
	if !ok {
		return nil, ErrNotFound
	}
	return &account, nil
}
