// Package derrors carries coded domain errors across the service boundary.
// Services produce them, handlers translate the code to an HTTP status. Raw
// store error text stays inside the service layer.
package derrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeBadRequest  Code = "bad_request"
	CodeNotFound    Code = "not_found"
	CodeConflict    Code = "conflict"
	CodeInternal    Code = "internal"
	CodeUnavailable Code = "unavailable"
)

// Error is a domain error with a stable machine-readable code.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a domain error with the given code and caller-facing message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error. The cause is kept
// for logging but never rendered to API clients.
func Wrap(err error, code Code, message string) error {
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Message returns the caller-facing message, or a generic fallback for
// non-domain errors.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}

// ToHTTPStatus maps a domain error code to an HTTP status code.
func ToHTTPStatus(err error) int {
	var de *Error
	if !errors.As(err, &de) {
		return http.StatusInternalServerError
	}
	switch de.Code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
