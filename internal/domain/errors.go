// internal/domain/errors.go
package domain

import "errors"

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not found")
	ErrCorruptSession = errors.New("corrupt session data")
)

// APIError is a failure reported by the backend in a {success:false,error:{message}} body.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "request rejected"
	}
	return e.Message
}
