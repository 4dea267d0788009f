package user

import (
	"context"
	"sync"
)

// MemoryDirectory is a process-memory Directory backed by a map. It is the
// default backing for development and tests.
type MemoryDirectory struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryDirectory creates an empty in-memory directory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{users: make(map[string]User)}
}

// Exists reports whether a username is registered.
func (d *MemoryDirectory) Exists(_ context.Context, username string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.users[username]
	return ok, nil
}

// Get returns the full stored record, or (nil, nil) if absent.
func (d *MemoryDirectory) Get(_ context.Context, username string) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetPublic returns the public projection, or (nil, nil) if absent.
func (d *MemoryDirectory) GetPublic(ctx context.Context, username string) (*Public, error) {
	u, err := d.Get(ctx, username)
	if err != nil || u == nil {
		return nil, err
	}
	return u.Public(), nil
}

// Create stores a new user. The check-and-insert runs under the write lock
// so of two concurrent creations of the same username exactly one wins.
func (d *MemoryDirectory) Create(_ context.Context, u *User) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.users[u.Username]; ok {
		return ErrAlreadyExists
	}
	d.users[u.Username] = *u
	return nil
}

var _ Directory = (*MemoryDirectory)(nil)
