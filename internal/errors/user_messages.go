package errors

// User-friendly error messages
const (
	MsgInvalidArgument      = "A required parameter is missing."
	MsgAuthenticationFailed = "Could not sign in to Call2FA. Check the login and password."
	MsgRequestFailed        = "Call2FA rejected the request."
	MsgCallNotFound         = "The call was not found."
	MsgTransport            = "Call2FA is unreachable right now. Check the network and try again."
	MsgInternalError        = "Something went wrong. Please try again later."
)
