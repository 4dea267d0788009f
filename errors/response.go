package errors

import (
	stderrors "errors"
)

// Envelope is the JSON structure returned to clients on failure.
type Envelope struct {
	Status string    `json:"status"`
	Error  ErrorCode `json:"error"`
	Detail any       `json:"detail"`
}

// ToEnvelope converts an AppError to the standard error envelope.
func (e *AppError) ToEnvelope() Envelope {
	return Envelope{
		Status: "error",
		Error:  e.Code,
		Detail: e.Detail,
	}
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
