package models

// Account is an API customer known to the stub server.
type Account struct {
	Login        string `json:"login"`
	PasswordHash string `json:"-"`
}

// LoginRequest represents the auth request payload
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the auth response payload
type TokenResponse struct {
	JWT string `json:"jwt"`
}
