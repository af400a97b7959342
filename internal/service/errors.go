package service

import "errors"

// Domain errors shared by the services. Handlers translate these to HTTP
// status codes; everything else is treated as an internal failure.
var (
	// ErrNotFound covers both "absent" and "owned by someone else", so the
	// API never reveals whether a foreign resource exists.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict signals a duplicate username at registration.
	ErrConflict = errors.New("username already exists")

	// ErrInvalidCredentials is returned for unknown users and wrong
	// passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalidInput(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
