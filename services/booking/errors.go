// File: services/booking/errors.go
package booking

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for booking failures.
const (
	CodeValidation      = "validation"
	CodeNotFound        = "notFound"
	CodeRoomUnavailable = "roomUnavailable"
	CodeOverlap         = "overlap"
	CodeTxAbort         = "txAbort"
	CodeTxTimeout       = "txTimeout"
)

// Error is a typed booking failure carrying a machine-readable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &Error{Code: CodeValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func NewRoomUnavailableError(msg string) error {
	return &Error{Code: CodeRoomUnavailable, Message: msg}
}

func NewOverlapError(msg string) error {
	return &Error{Code: CodeOverlap, Message: msg}
}

func NewTxAbortError(msg string) error {
	return &Error{Code: CodeTxAbort, Message: msg}
}

func NewTxTimeoutError(msg string) error {
	return &Error{Code: CodeTxTimeout, Message: msg}
}

// CodeOf returns the booking error code, or empty for untyped errors.
func CodeOf(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// StatusFor maps a booking error to its HTTP status.
func StatusFor(err error) int {
	switch CodeOf(err) {
	case CodeValidation, CodeRoomUnavailable, CodeOverlap, CodeTxAbort:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeTxTimeout:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
