package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeValidation, "bad body", http.StatusUnprocessableEntity)
	if err.Code != ErrCodeValidation {
		t.Errorf("expected code %s, got %s", ErrCodeValidation, err.Code)
	}
	if err.Detail != "bad body" {
		t.Errorf("expected detail 'bad body', got %v", err.Detail)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", err.HTTPStatus)
	}
}

func TestAppError_NotAuthenticated(t *testing.T) {
	err := NotAuthenticated()
	if err.Code != ErrCodeNotAuthenticated {
		t.Errorf("expected not_authenticated, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", err.HTTPStatus)
	}
	if err.Detail != "Not authenticated" {
		t.Errorf("unexpected detail: %v", err.Detail)
	}
}

func TestAppError_InvalidCredentials_Challenge(t *testing.T) {
	err := InvalidCredentials()
	if err.Headers["WWW-Authenticate"] != "Bearer" {
		t.Errorf("expected WWW-Authenticate: Bearer header, got %v", err.Headers)
	}
	if err.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", err.HTTPStatus)
	}
}

func TestAppError_InvalidToken(t *testing.T) {
	err := InvalidToken()
	if err.Detail != "Invalid token" {
		t.Errorf("unexpected detail: %v", err.Detail)
	}
	if len(err.Headers) != 0 {
		t.Errorf("invalid token should not carry a challenge header, got %v", err.Headers)
	}
}

func TestAppError_IncorrectCredentials(t *testing.T) {
	err := IncorrectCredentials()
	if err.Detail != "Incorrect username or password" {
		t.Errorf("unexpected detail: %v", err.Detail)
	}
	if err.Code != ErrorCode("unauthorized") {
		t.Errorf("expected snake_case status code, got %s", err.Code)
	}
}

func TestAppError_AlreadyExists(t *testing.T) {
	err := AlreadyExists()
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.HTTPStatus)
	}
	if err.Detail != "User already exists" {
		t.Errorf("unexpected detail: %v", err.Detail)
	}
}

func TestAppError_Internal_HidesCause(t *testing.T) {
	cause := fmt.Errorf("db connection lost")
	err := Internal(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	if err.Detail != "Internal server error" {
		t.Errorf("cause must not leak into detail, got %v", err.Detail)
	}
	env := err.ToEnvelope()
	if env.Detail != "Internal server error" {
		t.Errorf("cause must not leak into envelope, got %v", env.Detail)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Internal(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestAppError_ToEnvelope(t *testing.T) {
	env := RateLimited("Rate limit exceeded: 100 per 1 minute").ToEnvelope()
	if env.Status != "error" {
		t.Errorf("expected status error, got %s", env.Status)
	}
	if env.Error != ErrCodeRateLimited {
		t.Errorf("expected rate_limit_exceeded, got %s", env.Error)
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", AlreadyExists())
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to unwrap")
	}
	if appErr.Code != ErrCodeAlreadyExists {
		t.Errorf("unexpected code: %s", appErr.Code)
	}
	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("plain error should not convert")
	}
}

func TestCodeForStatus(t *testing.T) {
	cases := map[int]ErrorCode{
		http.StatusBadRequest:      "bad_request",
		http.StatusUnauthorized:    "unauthorized",
		http.StatusNotFound:        "not_found",
		http.StatusTooManyRequests: "too_many_requests",
	}
	for status, want := range cases {
		if got := CodeForStatus(status); got != want {
			t.Errorf("status %d: expected %s, got %s", status, want, got)
		}
	}
	if got := CodeForStatus(999); got != ErrCodeInternal {
		t.Errorf("unknown status should map to internal, got %s", got)
	}
}
