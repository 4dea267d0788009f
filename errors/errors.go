// Package errors provides the unified application error type used across the
// API. Errors carry a snake_case code, an HTTP status, and a client-facing
// detail, and are translated to the standard error envelope at the boundary.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is the machine-readable error code placed in the envelope.
	Code ErrorCode `json:"code"`
	// Detail is the human-readable message (or structured list) for clients.
	Detail any `json:"detail"`
	// HTTPStatus is the HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Headers are extra response headers to set when rendering this error.
	Headers map[string]string `json:"-"`
	// Cause is the underlying error, never exposed to clients.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v (cause: %v)", e.Code, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Detail)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithHeader sets a response header to emit with this error and returns the
// receiver.
func (e *AppError) WithHeader(key, value string) *AppError {
	if e.Headers == nil {
		e.Headers = make(map[string]string)
	}
	e.Headers[key] = value
	return e
}

// New creates an AppError with an explicit code, detail, and status.
func New(code ErrorCode, detail any, httpStatus int) *AppError {
	return &AppError{Code: code, Detail: detail, HTTPStatus: httpStatus}
}

// FromStatus creates an AppError whose code is derived from the HTTP status
// text, mirroring plain HTTP errors raised by handlers.
func FromStatus(status int, detail any) *AppError {
	return &AppError{Code: CodeForStatus(status), Detail: detail, HTTPStatus: status}
}

// --- Auth gate failures ---

// NotAuthenticated is returned when a request carries no bearer credential.
func NotAuthenticated() *AppError {
	return &AppError{
		Code: ErrCodeNotAuthenticated, Detail: "Not authenticated",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// InvalidCredentials is returned when a presented token fails signature,
// structure, or expiry checks. The response carries a WWW-Authenticate
// challenge as required for bearer token failures.
func InvalidCredentials() *AppError {
	e := &AppError{
		Code: ErrCodeInvalidCredentials, Detail: "Invalid credentials",
		HTTPStatus: http.StatusUnauthorized,
	}
	return e.WithHeader("WWW-Authenticate", "Bearer")
}

// InvalidToken is returned when a token decodes cleanly but carries no
// usable subject, or the subject is unknown to the user directory. The two
// cases are deliberately indistinguishable to prevent user enumeration.
func InvalidToken() *AppError {
	return &AppError{
		Code: ErrCodeInvalidToken, Detail: "Invalid token",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// --- Login and registration failures ---

// IncorrectCredentials is returned for a failed login. Unknown username and
// wrong password produce the identical error.
func IncorrectCredentials() *AppError {
	return &AppError{
		Code: ErrCodeIncorrectCredentials, Detail: "Incorrect username or password",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// AlreadyExists is returned when registering a username that is taken.
func AlreadyExists() *AppError {
	return &AppError{
		Code: ErrCodeAlreadyExists, Detail: "User already exists",
		HTTPStatus: http.StatusBadRequest,
	}
}

// --- Request and infrastructure failures ---

// Validation creates an AppError for a malformed request body. Detail is
// typically a structured per-field list.
func Validation(detail any) *AppError {
	return &AppError{
		Code: ErrCodeValidation, Detail: detail,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// RateLimited creates an AppError for a breached request rate limit.
func RateLimited(detail string) *AppError {
	if detail == "" {
		detail = "Rate limit exceeded"
	}
	return &AppError{
		Code: ErrCodeRateLimited, Detail: detail,
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// Internal creates an AppError for an unexpected fault. The cause is logged
// at the boundary; clients only ever see the generic detail.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Detail: "Internal server error",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}
