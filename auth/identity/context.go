// Package identity carries the authenticated user's public record on the
// request context. The auth gate stores it on the inbound leg; handlers read
// it for the remainder of the request. It is never shared across requests.
package identity

import (
	"context"

	"github.com/kbukum/apibase/user"
)

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var identityKey = contextKey{}

// Set stores the authenticated user's public record in the context.
func Set(ctx context.Context, u *user.Public) context.Context {
	return context.WithValue(ctx, identityKey, u)
}

// Get retrieves the authenticated user from the context. The second return
// is false for unauthenticated requests (e.g. excluded paths).
func Get(ctx context.Context) (*user.Public, bool) {
	u, ok := ctx.Value(identityKey).(*user.Public)
	return u, ok
}
