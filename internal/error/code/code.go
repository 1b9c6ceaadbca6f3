// Package code defines the service error taxonomy: stable error codes, the
// messages attached to them, and the HTTP status each maps to.
package code

import (
	"errors"
	"fmt"
)

// Service error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unclassified failure.
	ErrUnknown
	// ErrBind - 400: request body could not be decoded.
	ErrBind
	// ErrValidation - 400: a required field is missing or malformed.
	ErrValidation
	// ErrNotFound - 404: the referenced document does not exist.
	ErrNotFound
	// ErrStorageUnavailable - 503: the database is unreachable or erroring.
	ErrStorageUnavailable
	// ErrNotImplemented - 501: the resource has no backend implementation.
	ErrNotImplemented
)

// Error is a tagged service error. Code selects message and HTTP status;
// Field names the offending field for validation failures.
type Error struct {
	Code    int
	Field   string
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New builds an Error with a custom message.
func New(errCode int, format string, args ...interface{}) *Error {
	return &Error{Code: errCode, Message: fmt.Sprintf(format, args...)}
}

// MissingField reports a required field that was absent or empty.
func MissingField(field string) *Error {
	return &Error{
		Code:    ErrValidation,
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
	}
}

// InvalidField reports a field whose value is outside its allowed set.
func InvalidField(field, detail string) *Error {
	return &Error{
		Code:    ErrValidation,
		Field:   field,
		Message: fmt.Sprintf("%s %s", field, detail),
	}
}

// NotFound reports an operation keyed by an id that matched nothing.
func NotFound(entity string, id uint) *Error {
	return &Error{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s %d not found", entity, id),
	}
}

// StorageUnavailable wraps a database failure.
func StorageUnavailable(err error) *Error {
	return &Error{
		Code:    ErrStorageUnavailable,
		Message: "storage unavailable: " + err.Error(),
		cause:   err,
	}
}

// NotImplemented reports a resource with no backend implementation.
func NotImplemented(resource string) *Error {
	return &Error{
		Code:    ErrNotImplemented,
		Message: fmt.Sprintf("%s is not implemented", resource),
	}
}

// CodeOf extracts the error code, falling back to ErrUnknown for errors
// raised outside this taxonomy.
func CodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// Is reports whether err carries the given code.
func Is(err error, errCode int) bool {
	return CodeOf(err) == errCode
}
