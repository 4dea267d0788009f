// Package user defines the user directory: lookup and creation of identity
// records behind an interface, with in-memory and Redis backings.
package user

import (
	"context"
	"errors"
)

// ErrAlreadyExists is returned by Create when the username is taken.
var ErrAlreadyExists = errors.New("user: already exists")

// User is the stored user record: credential plus profile fields.
// The hashed password never leaves this package through Public.
type User struct {
	Username       string `json:"username"`
	HashedPassword string `json:"hashed_password"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
}

// Public is the public projection of a user, safe to attach to requests and
// return to clients. It is always derived on demand from the stored record.
type Public struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Public returns the public projection of the user.
func (u *User) Public() *Public {
	return &Public{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// Directory is the user store abstraction. Implementations must be safe for
// concurrent reads; Create must guarantee that of two concurrent creations
// of the same username exactly one succeeds.
//
// Lookups return (nil, nil) when the username is unknown so callers can
// collapse "absent" and "bad credential" into one outcome.
type Directory interface {
	// Exists reports whether a username is registered.
	Exists(ctx context.Context, username string) (bool, error)

	// Get returns the full stored record, or (nil, nil) if absent.
	Get(ctx context.Context, username string) (*User, error)

	// GetPublic returns the public projection, or (nil, nil) if absent.
	GetPublic(ctx context.Context, username string) (*Public, error)

	// Create stores a new user. Returns ErrAlreadyExists if the username
	// is taken.
	Create(ctx context.Context, u *User) error
}
