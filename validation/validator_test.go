package validation

import (
	"net/http"
	"testing"

	"github.com/kbukum/apibase/errors"
)

type registerPayload struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

func TestValidate_Valid(t *testing.T) {
	p := registerPayload{Username: "alice", Password: "pw123", Email: "a@b.com"}
	if err := Validate(p); err != nil {
		t.Errorf("expected valid payload, got %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	err := Validate(registerPayload{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeValidation {
		t.Errorf("expected validation_error, got %s", appErr.Code)
	}
	if appErr.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", appErr.HTTPStatus)
	}

	fields, ok := appErr.Detail.([]FieldError)
	if !ok {
		t.Fatalf("expected field error list, got %T", appErr.Detail)
	}
	if len(fields) != 3 {
		t.Errorf("expected 3 field errors, got %d", len(fields))
	}
}

func TestValidate_FieldNamesFromJSONTags(t *testing.T) {
	err := Validate(registerPayload{Username: "al", Password: "pw", Email: "a@b.com"})
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	fields := appErr.Detail.([]FieldError)
	if len(fields) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fields))
	}
	if fields[0].Field != "username" {
		t.Errorf("expected field name from json tag, got %s", fields[0].Field)
	}
	if fields[0].Message != "must be at least 3 characters" {
		t.Errorf("unexpected message: %s", fields[0].Message)
	}
}

func TestValidate_BadEmail(t *testing.T) {
	err := Validate(registerPayload{Username: "alice", Password: "pw", Email: "nope"})
	appErr, _ := errors.AsAppError(err)
	fields := appErr.Detail.([]FieldError)
	if fields[0].Field != "email" || fields[0].Message != "must be a valid email address" {
		t.Errorf("unexpected field error: %+v", fields[0])
	}
}

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"FirstName": "first_name",
		"Email":     "email",
		"username":  "username",
	}
	for in, want := range cases {
		if got := toSnakeCase(in); got != want {
			t.Errorf("%s: expected %s, got %s", in, want, got)
		}
	}
}
