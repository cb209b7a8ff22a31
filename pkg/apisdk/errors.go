package apisdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes shared between the server and SDK client.
const (
	ErrorCodeCredentialsIncorrect = "credentials_incorrect"
	ErrorCodeAccessDenied         = "access_denied"
	ErrorCodeUnauthenticated      = "unauthenticated"
	ErrorCodeNotFound             = "not_found"
	ErrorCodeUpstreamFailure      = "upstream_failure"
	ErrorCodeInvalidRequest       = "invalid_request"
	ErrorCodeServerError          = "server_error"
)

// APIError is the error payload every non-2xx endpoint response carries. It
// implements the error interface so the SDK client can surface it directly.
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Code is a stable machine-readable error code.
	Code string `json:"error"`

	// Message is a human-readable description. Auth failures deliberately
	// share one generic message so callers cannot probe which emails exist.
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError as an HTTP response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   e.Code,
		"message": e.Message,
	})
}

var (
	// ErrCredentialsIncorrect is returned when registration hits an email
	// that is already taken. The message matches the signin failure register
	// of vagueness: it never confirms the email exists.
	ErrCredentialsIncorrect = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeCredentialsIncorrect,
		Message:    "Credentials incorrect",
	}

	// ErrAccessDenied is returned for bad passwords, unknown users during
	// signin, and invalid or mismatched refresh tokens. One error, one
	// message, regardless of which check failed.
	ErrAccessDenied = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeAccessDenied,
		Message:    "Access Denied",
	}

	// ErrUnauthenticated is returned when a protected route is called with a
	// missing, malformed or expired bearer token.
	ErrUnauthenticated = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthenticated,
		Message:    "Unauthenticated",
	}

	// ErrUserNotFound is returned by the profile endpoint when the token's
	// subject no longer exists.
	ErrUserNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "User not found",
	}

	// ErrUpstreamFailure is returned when the landscape image provider
	// cannot be reached or answers with an error.
	ErrUpstreamFailure = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeUpstreamFailure,
		Message:    "Failed to list landscapes",
	}

	// ErrInvalidRequest is returned for unparseable or incomplete bodies.
	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidRequest,
		Message:    "The request is malformed or missing required fields",
	}

	// ErrServerError is the catch-all for unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "Internal server error",
	}
)
