package models

import (
	"time"
)

// CallMode identifies which endpoint created a call.
type CallMode string

const (
	ModePlain      CallMode = "plain"
	ModeLastDigits CallMode = "last_digits"
	ModeSixDigits  CallMode = "six_digits"
	ModeCode       CallMode = "code"
)

// Call is a voice call registered by the stub server.
type Call struct {
	ID          string    `json:"call_id"`
	Login       string    `json:"-"`
	Mode        CallMode  `json:"mode"`
	PhoneNumber string    `json:"phone_number"`
	CallbackURL string    `json:"callback_url,omitempty"`
	PoolID      string    `json:"pool_id,omitempty"`
	Number      string    `json:"number,omitempty"`
	Code        string    `json:"code,omitempty"`
	Lang        string    `json:"lang,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// CallRequest is the body of POST /{v}/call/.
type CallRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	CallbackURL string `json:"callback_url" binding:"omitempty,url"`
}

// PoolCallRequest is the body of POST /{v}/pool/{id}/call/.
type PoolCallRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// CodeCallRequest is the body of POST /{v}/code/call/.
type CodeCallRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Code        string `json:"code" binding:"required,numeric"`
	Lang        string `json:"lang" binding:"required"`
}
