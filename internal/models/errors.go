package models

import "errors"

// Sentinel errors forming the error taxonomy every service response is
// classified into before it crosses the HTTP boundary.
var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateAccount   = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("admin privileges required")
	ErrStoreUnavailable   = errors.New("record store unavailable")
)

// ValidationError reports a client-fixable problem with a single field.
// Field names match the JSON names of the request payload.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}
