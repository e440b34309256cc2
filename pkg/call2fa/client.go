// Package call2fa is a client for the Rikkicom Call2FA voice-call API.
//
// NewClient authenticates immediately and keeps the returned JWT for the life
// of the Client; every other method attaches it as a bearer token. A Client is
// meant for sequential use. Use one Client per goroutine or serialize access.
package call2fa

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"call2fa/pkg/logger"
)

const (
	// DefaultBaseURI is the production Call2FA endpoint.
	DefaultBaseURI = "https://api-call2fa.rikkicom.io"
	// DefaultVersion is the API version used until SetVersion is called.
	DefaultVersion = "v1"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "call2fa-go/1.0"

	stepAuth = "auth"
	stepCall = "call"
	stepInfo = "info"
)

// Response is a decoded JSON object returned by the API, passed through as-is.
type Response map[string]interface{}

// Client manages Call2FA authentication and requests
type Client struct {
	login      string
	password   string
	baseURI    string
	version    string
	token      string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	log        *logger.Logger
}

// Option customises a Client during NewClient.
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a local stub.
func WithBaseURL(baseURI string) Option {
	return func(c *Client) {
		c.baseURI = strings.TrimRight(strings.TrimSpace(baseURI), "/")
	}
}

// WithVersion sets the API version used for authentication and later calls.
func WithVersion(version string) Option {
	return func(c *Client) {
		c.version = version
	}
}

// WithTimeout sets the per-request timeout. Without it the client uses the
// timeout of the HTTP client passed to WithHTTPClient, or 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. The client is copied, so
// the timeout option never mutates the caller's value.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger routes client logs to l.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient validates the credentials and authenticates against the API.
// It returns a nil Client if authentication does not succeed.
func NewClient(ctx context.Context, login, password string, opts ...Option) (*Client, error) {
	if err := requireNonEmpty("login", login, "password", password); err != nil {
		return nil, err
	}

	c := &Client{
		login:      login,
		password:   password,
		baseURI:    DefaultBaseURI,
		version:    DefaultVersion,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{},
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	hc := *c.httpClient
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	} else if hc.Timeout == 0 {
		hc.Timeout = defaultTimeout
	}
	c.httpClient = &hc

	if err := c.authenticate(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Version returns the current API version.
func (c *Client) Version() string {
	return c.version
}

// SetVersion sets a different API version for all subsequent requests.
// The value is not validated.
func (c *Client) SetVersion(version string) {
	c.version = version
}

// Token returns the JWT obtained during NewClient.
func (c *Client) Token() string {
	return c.token
}

// makeFullURI creates a full URI to the specified API method.
func (c *Client) makeFullURI(method string) string {
	return fmt.Sprintf("%s/%s/%s/", c.baseURI, c.version, method)
}
