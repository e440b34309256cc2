package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"call2fa/internal/auth"
	"call2fa/internal/models"
	"call2fa/internal/repositories"
	"call2fa/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallService_Call(t *testing.T) {
	svc := NewCallService(repositories.NewCallRepository(100))
	ctx := context.Background()

	call, err := svc.Call(ctx, "demo", models.CallRequest{PhoneNumber: "+1555", CallbackURL: "https://example.com/cb"})
	require.NoError(t, err)
	assert.Equal(t, "100", call.ID)
	assert.Equal(t, models.ModePlain, call.Mode)
	assert.Equal(t, "https://example.com/cb", call.CallbackURL)
	assert.Equal(t, "queued", call.Status)

	next, err := svc.CallWithCode(ctx, "demo", models.CodeCallRequest{PhoneNumber: "+1555", Code: "1234", Lang: "en"})
	require.NoError(t, err)
	assert.Equal(t, "101", next.ID)
	assert.Equal(t, models.ModeCode, next.Mode)
}

func TestCallService_CallViaPool(t *testing.T) {
	svc := NewCallService(repositories.NewCallRepository(1))
	ctx := context.Background()

	tests := []struct {
		name   string
		six    bool
		mode   models.CallMode
		digits int
	}{
		{"four digits", false, models.ModeLastDigits, 4},
		{"six digits", true, models.ModeSixDigits, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call, err := svc.CallViaPool(ctx, "demo", "pool-1", tt.six, models.PoolCallRequest{PhoneNumber: "+1555"})
			require.NoError(t, err)
			assert.Equal(t, tt.mode, call.Mode)
			assert.Equal(t, "pool-1", call.PoolID)
			assert.Len(t, call.Code, tt.digits)
			assert.True(t, strings.HasSuffix(call.Number, call.Code))
		})
	}
}

func TestCallService_InfoIsScopedToAccount(t *testing.T) {
	svc := NewCallService(repositories.NewCallRepository(1))
	ctx := context.Background()

	call, err := svc.Call(ctx, "alice", models.CallRequest{PhoneNumber: "+1555"})
	require.NoError(t, err)

	got, err := svc.Info(ctx, "alice", call.ID)
	require.NoError(t, err)
	assert.Equal(t, call.ID, got.ID)

	_, err = svc.Info(ctx, "bob", call.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = svc.Info(ctx, "alice", "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUserService_Login(t *testing.T) {
	hash, err := auth.HashPassword("password")
	require.NoError(t, err)
	repo := repositories.NewAccountRepository([]config.Account{{Login: "demo", PasswordHash: hash}})
	svc := NewUserService(repo, "test_secret", time.Hour)
	ctx := context.Background()

	token, err := svc.Login(ctx, "demo", "password")
	require.NoError(t, err)
	claims, err := auth.ValidateJWT(token, "test_secret")
	require.NoError(t, err)
	assert.Equal(t, "demo", claims.Login)

	_, err = svc.Login(ctx, "demo", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
