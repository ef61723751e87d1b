// Package apperror defines the errors the order API reports to clients.
//
// Every failure carries an HTTP status and a client-facing message. The
// sentinels ErrValidation and ErrNotFound let callers classify an error
// with errors.Is without inspecting the status code.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// Error is a client-facing failure
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	kind    error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.kind
}

// Validation returns a 400 error with a formatted message
func Validation(format string, args ...any) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf(format, args...),
		kind:    ErrValidation,
	}
}

// NotFound returns a 404 error with a formatted message
func NotFound(format string, args ...any) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf(format, args...),
		kind:    ErrNotFound,
	}
}

// New returns an error with an arbitrary status, e.g. 405 from the router.
func New(status int, format string, args ...any) *Error {
	return &Error{
		Status:  status,
		Message: fmt.Sprintf(format, args...),
	}
}

// From extracts an *Error from err. Anything else becomes a 500 with a
// generic message so internal details never reach the client.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return New(http.StatusInternalServerError, "Internal server error")
}
