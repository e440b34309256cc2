package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"call2fa/internal/auth"
	"call2fa/internal/repositories"
)

// ErrInvalidCredentials is returned by Login for an unknown login or wrong password.
var ErrInvalidCredentials = errors.New("invalid login or password")

type UserService struct {
	repo      repositories.AccountRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewUserService(repo repositories.AccountRepository, jwtSecret string, tokenTTL time.Duration) *UserService {
	return &UserService{
		repo:      repo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Login checks the credentials and returns a signed JWT.
func (s *UserService) Login(ctx context.Context, login, password string) (string, error) {
	if login == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	account, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to query account: %w", err)
	}

	if !auth.CheckPassword(account.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(account.Login, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
