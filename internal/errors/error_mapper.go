package errors

import (
	stderrors "errors"
	"net/http"

	"call2fa/pkg/call2fa"
)

// MapError converts a client error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	mapped := &AppError{
		TechnicalMessage: err.Error(),
		UserMessage:      MsgInternalError,
		Code:             ErrCodeInternal,
		ExitCode:         ExitInternal,
		OriginalError:    err,
	}

	var clientErr *call2fa.Error
	if !stderrors.As(err, &clientErr) {
		return mapped
	}

	switch clientErr.Kind {
	case call2fa.KindInvalidArgument:
		mapped.UserMessage = MsgInvalidArgument
		mapped.Code = ErrCodeInvalidArgument
		mapped.ExitCode = ExitInvalidArgument
	case call2fa.KindAuthenticationFailed:
		mapped.UserMessage = MsgAuthenticationFailed
		mapped.Code = ErrCodeAuthenticationFailed
		mapped.ExitCode = ExitAuthenticationFailed
	case call2fa.KindRequestFailed:
		mapped.UserMessage = MsgRequestFailed
		if clientErr.Step == "info" && clientErr.StatusCode == http.StatusNotFound {
			mapped.UserMessage = MsgCallNotFound
		}
		mapped.Code = ErrCodeRequestFailed
		mapped.ExitCode = ExitRequestFailed
	case call2fa.KindTransport:
		mapped.UserMessage = MsgTransport
		mapped.Code = ErrCodeTransport
		mapped.ExitCode = ExitTransport
	}
	return mapped
}
