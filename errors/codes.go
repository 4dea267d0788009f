package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a machine-readable, snake_case error code surfaced to clients
// in the error envelope.
type ErrorCode string

// Authentication failures (resolved locally by the auth gate)
const (
	// ErrCodeNotAuthenticated indicates no credential was presented.
	ErrCodeNotAuthenticated ErrorCode = "not_authenticated"
	// ErrCodeInvalidToken indicates a decoded token with no usable subject,
	// or a subject the user directory does not know.
	ErrCodeInvalidToken ErrorCode = "invalid_token"
	// ErrCodeInvalidCredentials indicates the token failed signature,
	// structure, or expiry checks.
	ErrCodeInvalidCredentials ErrorCode = "invalid_credentials"
)

// Login and registration failures
const (
	// ErrCodeIncorrectCredentials indicates a failed username/password login.
	ErrCodeIncorrectCredentials ErrorCode = "unauthorized"
	// ErrCodeAlreadyExists indicates a registration for a taken username.
	ErrCodeAlreadyExists ErrorCode = "bad_request"
)

// Request and infrastructure failures
const (
	// ErrCodeValidation indicates a malformed request body.
	ErrCodeValidation ErrorCode = "validation_error"
	// ErrCodeRateLimited indicates the client exceeded the request rate.
	ErrCodeRateLimited ErrorCode = "rate_limit_exceeded"
	// ErrCodeInternal indicates an unexpected server-side fault.
	ErrCodeInternal ErrorCode = "internal_server_error"
)

// CodeForStatus derives a snake_case error code from the HTTP status text,
// e.g. 404 -> "not_found". Used for errors raised with a bare status code.
func CodeForStatus(status int) ErrorCode {
	text := http.StatusText(status)
	if text == "" {
		return ErrCodeInternal
	}
	return ErrorCode(strings.ReplaceAll(strings.ToLower(text), " ", "_"))
}
