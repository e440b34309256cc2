package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("demo", "test_secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateJWT(token, "test_secret")
	require.NoError(t, err)
	assert.Equal(t, "demo", claims.Login)
	assert.Equal(t, "demo", claims.Subject)
}

func TestValidateJWT_Failures(t *testing.T) {
	token, err := GenerateJWT("demo", "test_secret", time.Hour)
	require.NoError(t, err)
	expired, err := GenerateJWT("demo", "test_secret", -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", token, "other_secret"},
		{"expired", expired, "test_secret"},
		{"garbage", "not.a.jwt", "test_secret"},
		{"empty token", "", "test_secret"},
		{"empty secret", token, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateJWT(tt.token, tt.secret)
			assert.Error(t, err)
		})
	}
}

func TestGenerateJWT_RequiresInputs(t *testing.T) {
	_, err := GenerateJWT("", "secret", time.Hour)
	assert.Error(t, err)
	_, err = GenerateJWT("demo", "", time.Hour)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "password"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "password"))
}
