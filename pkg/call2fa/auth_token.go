package call2fa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

// authRequest is the body of the auth endpoint.
type authRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// TokenResponse represents the auth endpoint response
type TokenResponse struct {
	JWT string `json:"jwt"`
}

// parseTokenResponse decodes the auth response body into a TokenResponse
func (c *Client) parseTokenResponse(body []byte, authURL string) (TokenResponse, error) {
	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		c.log.Errorf("Failed to decode token response: url=%s, error=%v", authURL, err)
		return tokenResp, &Error{Kind: KindAuthenticationFailed, Step: stepAuth, Detail: "decode response"}
	}
	if tokenResp.JWT == "" {
		c.log.Errorf("JWT not found in authentication response: url=%s", authURL)
		return tokenResp, &Error{Kind: KindAuthenticationFailed, Step: stepAuth, Detail: "token missing"}
	}
	return tokenResp, nil
}

// authenticate receives and stores the JSON Web Token. It runs once, from NewClient.
func (c *Client) authenticate(ctx context.Context) error {
	authURL := c.makeFullURI("auth")
	creds := authRequest{Login: c.login, Password: c.password}

	status, body, err := c.do(ctx, stepAuth, http.MethodPost, authURL, creds, false)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		c.log.Errorf("Token request failed: url=%s, status=%d", authURL, status)
		return &Error{
			Kind:       KindAuthenticationFailed,
			Step:       stepAuth,
			StatusCode: status,
			Detail:     fmt.Sprintf("incorrect status code %d", status),
		}
	}

	tokenResp, err := c.parseTokenResponse(body, authURL)
	if err != nil {
		return err
	}

	c.token = tokenResp.JWT
	c.log.Printf("Successfully retrieved Call2FA token: login=%s, version=%s", c.login, c.version)
	return nil
}

// TokenClaims decodes the claims of the stored JWT without verifying its
// signature. The result is informational; the client never acts on it.
func (c *Client) TokenClaims() (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.token, claims); err != nil {
		return nil, fmt.Errorf("parse token claims: %w", err)
	}
	return claims, nil
}
