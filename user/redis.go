package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kbukum/apibase/redis"
)

const keyPrefix = "user:"

// RedisDirectory is a Directory backed by Redis. Records are stored as JSON
// under "user:<username>"; creation uses SETNX so concurrent registrations
// of the same name resolve to a single winner.
type RedisDirectory struct {
	client *redis.Client
}

// NewRedisDirectory creates a Redis-backed directory.
func NewRedisDirectory(client *redis.Client) *RedisDirectory {
	return &RedisDirectory{client: client}
}

func key(username string) string {
	return keyPrefix + username
}

// Exists reports whether a username is registered.
func (d *RedisDirectory) Exists(ctx context.Context, username string) (bool, error) {
	n, err := d.client.Exists(ctx, key(username))
	if err != nil {
		return false, fmt.Errorf("user: exists %q: %w", username, err)
	}
	return n > 0, nil
}

// Get returns the full stored record, or (nil, nil) if absent.
func (d *RedisDirectory) Get(ctx context.Context, username string) (*User, error) {
	raw, err := d.client.Get(ctx, key(username))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, nil
		}
		return nil, fmt.Errorf("user: get %q: %w", username, err)
	}

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("user: unmarshal %q: %w", username, err)
	}
	return &u, nil
}

// GetPublic returns the public projection, or (nil, nil) if absent.
func (d *RedisDirectory) GetPublic(ctx context.Context, username string) (*Public, error) {
	u, err := d.Get(ctx, username)
	if err != nil || u == nil {
		return nil, err
	}
	return u.Public(), nil
}

// Create stores a new user. Returns ErrAlreadyExists if the username is taken.
func (d *RedisDirectory) Create(ctx context.Context, u *User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("user: marshal %q: %w", u.Username, err)
	}

	ok, err := d.client.SetNX(ctx, key(u.Username), string(data), 0)
	if err != nil {
		return fmt.Errorf("user: create %q: %w", u.Username, err)
	}
	if !ok {
		return ErrAlreadyExists
	}
	return nil
}

var _ Directory = (*RedisDirectory)(nil)
