package code

import "net/http"

// Default messages per error code, used when an Error carries no message of
// its own.
var codeMessageMap = map[int]string{
	ErrSuccess:            "success",
	ErrUnknown:            "internal error",
	ErrBind:               "invalid request body",
	ErrValidation:         "validation failed",
	ErrNotFound:           "not found",
	ErrStorageUnavailable: "storage unavailable",
	ErrNotImplemented:     "not implemented",
}

// HTTP status per error code. NotImplemented gets its own status so clients
// can tell a missing feature from a transient outage.
var codeStatusMap = map[int]int{
	ErrSuccess:            http.StatusOK,
	ErrUnknown:            http.StatusInternalServerError,
	ErrBind:               http.StatusBadRequest,
	ErrValidation:         http.StatusBadRequest,
	ErrNotFound:           http.StatusNotFound,
	ErrStorageUnavailable: http.StatusServiceUnavailable,
	ErrNotImplemented:     http.StatusNotImplemented,
}

// GetMessage returns the default message for an error code.
func GetMessage(errCode int) string {
	if msg, ok := codeMessageMap[errCode]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus returns the HTTP status for an error code.
func GetStatus(errCode int) int {
	if status, ok := codeStatusMap[errCode]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// StatusToCode maps an HTTP status back onto the taxonomy; the client uses
// it to classify server responses.
func StatusToCode(status int) int {
	switch {
	case status == http.StatusOK || status == http.StatusCreated:
		return ErrSuccess
	case status == http.StatusBadRequest:
		return ErrValidation
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusNotImplemented:
		return ErrNotImplemented
	case status >= 500:
		return ErrStorageUnavailable
	default:
		return ErrUnknown
	}
}
