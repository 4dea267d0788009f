// Package password provides one-way password hashing and verification.
//
// Hashing uses bcrypt: every call salts freshly, so the same password never
// hashes to the same value twice, and the salt travels inside the stored
// hash for verification. Comparison is constant time.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedHash is returned by Verify when the stored value is not a
// valid bcrypt hash. This is a data-corruption fault, distinct from a
// plain password mismatch.
var ErrMalformedHash = errors.New("password: malformed stored hash")

// Hasher hashes and verifies passwords using bcrypt.
type Hasher struct {
	cost int
}

// Option configures the hasher.
type Option func(*Hasher)

// WithCost sets the bcrypt cost parameter (default: 12, range: 4-31).
func WithCost(cost int) Option {
	return func(h *Hasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// NewHasher creates a bcrypt-based password hasher.
func NewHasher(opts ...Option) *Hasher {
	h := &Hasher{cost: 12}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash returns a salted bcrypt hash of the password.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password: empty password")
	}
	if len(password) > 72 {
		return "", errors.New("password: maximum length is 72 bytes (bcrypt limit)")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored hash. A mismatch is a
// normal false result with a nil error; a stored value that is not a bcrypt
// hash at all yields ErrMalformedHash.
func (h *Hasher) Verify(password, stored string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, ErrMalformedHash
	}
}
