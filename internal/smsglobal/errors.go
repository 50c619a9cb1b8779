package smsglobal

import "errors"

var (
	ErrUserNotSet         = errors.New("user is not set")
	ErrPasswordNotSet     = errors.New("password is not set")
	ErrISOCountryNotValid = errors.New("ISO country code is not valid")
)

var (
	ErrTransport      = errors.New("transport failure")
	ErrAuthentication = errors.New("authentication failure")
	ErrApplication    = errors.New("application error")
	ErrParse          = errors.New("parse failure")
	ErrRootMissing    = errors.New("root element is missing")
	ErrCaller         = errors.New("error set by caller")
	ErrTicketMissing  = errors.New("ticket missing in login response")
	ErrGated          = errors.New("last error is not cleared")
	ErrNoTransport    = errors.New("no transport available")
)

// Error is a failure kept as the last error of the client.
// Its message is the plain description of the failure, and it
// wraps both its kind, such as ErrTransport, and its cause if any.
type Error struct {
	kind    error
	message string
	cause   error
}

func newError(kind error, message string, cause error) *Error {
	return &Error{
		kind:    kind,
		message: message,
		cause:   cause,
	}
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Kind() error {
	return e.kind
}

func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}
