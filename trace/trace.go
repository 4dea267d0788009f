// Package trace provides per-request correlation identifiers.
//
// A trace ID is generated when a request enters the server, travels with the
// request's context.Context, and is copied into the X-Trace-ID response
// header on the way out. Storing the ID on the context keeps it isolated per
// request under concurrency without explicit parameter threading.
package trace

import (
	"context"

	"github.com/google/uuid"
)

// HeaderName is the response header carrying the trace ID.
const HeaderName = "X-Trace-ID"

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var traceIDKey = contextKey{}

// NewID generates a fresh random trace identifier.
func NewID() string {
	return uuid.New().String()
}

// WithID returns a context carrying the given trace ID.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey, id)
}

// ID returns the trace ID carried by the context, or "" if none is set.
func ID(ctx context.Context) string {
	if v, ok := ctx.Value(traceIDKey).(string); ok {
		return v
	}
	return ""
}
