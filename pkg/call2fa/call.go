package call2fa

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type callRequest struct {
	PhoneNumber string `json:"phone_number"`
	CallbackURL string `json:"callback_url"`
}

type poolCallRequest struct {
	PhoneNumber string `json:"phone_number"`
}

type codeCallRequest struct {
	PhoneNumber string `json:"phone_number"`
	Code        string `json:"code"`
	Lang        string `json:"lang"`
}

// Call initiates a new call. callbackURL may be empty.
// The API answers 201 with a body such as {"call_id": "95818344"}.
func (c *Client) Call(ctx context.Context, phoneNumber, callbackURL string) (Response, error) {
	if err := requireNonEmpty("phone_number", phoneNumber); err != nil {
		return nil, err
	}

	payload := callRequest{PhoneNumber: phoneNumber, CallbackURL: callbackURL}
	return c.expect(ctx, stepCall, http.MethodPost, c.makeFullURI("call"), payload, http.StatusCreated)
}

// CallViaLastDigits initiates a call in the last digits mode, where the
// verification code is the tail of a number drawn from the pool.
func (c *Client) CallViaLastDigits(ctx context.Context, phoneNumber, poolID string, useSixDigits bool) (Response, error) {
	if err := requireNonEmpty("phone_number", phoneNumber, "pool_id", poolID); err != nil {
		return nil, err
	}

	method := fmt.Sprintf("pool/%s/call", url.PathEscape(poolID))
	if useSixDigits {
		method += "/six-digits"
	}
	payload := poolCallRequest{PhoneNumber: phoneNumber}
	return c.expect(ctx, stepCall, http.MethodPost, c.makeFullURI(method), payload, http.StatusCreated)
}

// CallWithCode initiates a call that speaks code in the given language.
func (c *Client) CallWithCode(ctx context.Context, phoneNumber, code, lang string) (Response, error) {
	if err := requireNonEmpty("phone_number", phoneNumber, "code", code, "lang", lang); err != nil {
		return nil, err
	}

	payload := codeCallRequest{PhoneNumber: phoneNumber, Code: code, Lang: lang}
	return c.expect(ctx, stepCall, http.MethodPost, c.makeFullURI("code/call"), payload, http.StatusCreated)
}

// Info gets information about a call by its identifier.
func (c *Client) Info(ctx context.Context, callID string) (Response, error) {
	if err := requireNonEmpty("call_id", callID); err != nil {
		return nil, err
	}

	method := fmt.Sprintf("call/%s", url.PathEscape(callID))
	return c.expect(ctx, stepInfo, http.MethodGet, c.makeFullURI(method), nil, http.StatusOK)
}
