package call2fa

import (
	"fmt"
)

// ErrorKind classifies a client failure.
type ErrorKind int

const (
	// KindInvalidArgument means a required input was empty. Raised before any I/O.
	KindInvalidArgument ErrorKind = iota + 1
	// KindAuthenticationFailed means the auth step returned a non-200 status or no token.
	KindAuthenticationFailed
	// KindRequestFailed means a call or info request returned an unexpected status.
	KindRequestFailed
	// KindTransport means the exchange could not be completed (DNS, connection, timeout).
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindAuthenticationFailed:
		return "authentication failed"
	case KindRequestFailed:
		return "request failed"
	case KindTransport:
		return "transport error"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrInvalidArgument      = &Error{Kind: KindInvalidArgument}
	ErrAuthenticationFailed = &Error{Kind: KindAuthenticationFailed}
	ErrRequestFailed        = &Error{Kind: KindRequestFailed}
	ErrTransport            = &Error{Kind: KindTransport}
)

// Error is the single error type returned by Client.
type Error struct {
	Kind ErrorKind
	// Field names the empty parameter for KindInvalidArgument.
	Field string
	// Step is "auth", "call" or "info".
	Step       string
	StatusCode int
	Detail     string
	// Err holds the low-level cause for KindTransport.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidArgument:
		return fmt.Sprintf("call2fa: the %s parameter is empty", e.Field)
	case KindAuthenticationFailed:
		if e.StatusCode != 0 {
			return fmt.Sprintf("call2fa: incorrect status code %d on authorization step", e.StatusCode)
		}
		return fmt.Sprintf("call2fa: authentication failed: %s", e.Detail)
	case KindRequestFailed:
		if e.Detail != "" {
			return fmt.Sprintf("call2fa: %s on %s step (status %d)", e.Detail, e.Step, e.StatusCode)
		}
		return fmt.Sprintf("call2fa: incorrect status code %d on %s step", e.StatusCode, e.Step)
	case KindTransport:
		return fmt.Sprintf("call2fa: cannot perform a request on %s step: %v", e.Step, e.Err)
	default:
		return fmt.Sprintf("call2fa: %s", e.Detail)
	}
}

// Unwrap returns the original error for error chaining.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func invalidArgument(field string) *Error {
	return &Error{Kind: KindInvalidArgument, Field: field}
}

func transportError(step string, err error) *Error {
	return &Error{Kind: KindTransport, Step: step, Err: err}
}

func requestFailed(step string, status int, detail string) *Error {
	return &Error{Kind: KindRequestFailed, Step: step, StatusCode: status, Detail: detail}
}

// requireNonEmpty returns an InvalidArgument error for the first empty value.
// Pairs are field name followed by value.
func requireNonEmpty(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return invalidArgument(pairs[i])
		}
	}
	return nil
}
