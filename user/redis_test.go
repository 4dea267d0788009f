package user

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/kbukum/apibase/logger"
	"github.com/kbukum/apibase/redis"
)

func newRedisDirectory(t *testing.T) *RedisDirectory {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisDirectory(redis.NewFromClient(rdb, logger.NewDefault()))
}

func TestRedisDirectory_CreateAndGet(t *testing.T) {
	d := newRedisDirectory(t)
	ctx := context.Background()

	err := d.Create(ctx, &User{
		Username:       "alice",
		HashedPassword: "$2a$12$fake",
		FirstName:      "A",
		LastName:       "B",
		Email:          "a@b.com",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	ok, err := d.Exists(ctx, "alice")
	if err != nil || !ok {
		t.Fatalf("expected alice to exist, got ok=%v err=%v", ok, err)
	}

	u, err := d.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if u.Email != "a@b.com" {
		t.Errorf("unexpected email: %s", u.Email)
	}
}

func TestRedisDirectory_GetAbsent(t *testing.T) {
	d := newRedisDirectory(t)
	ctx := context.Background()

	u, err := d.Get(ctx, "ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != nil {
		t.Error("expected nil for absent user")
	}
}

func TestRedisDirectory_CreateDuplicate(t *testing.T) {
	d := newRedisDirectory(t)
	ctx := context.Background()

	if err := d.Create(ctx, &User{Username: "alice"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := d.Create(ctx, &User{Username: "alice"}); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRedisDirectory_GetPublic(t *testing.T) {
	d := newRedisDirectory(t)
	ctx := context.Background()

	_ = d.Create(ctx, &User{Username: "alice", HashedPassword: "h", FirstName: "A"})

	p, err := d.GetPublic(ctx, "alice")
	if err != nil {
		t.Fatalf("get public failed: %v", err)
	}
	if p.Username != "alice" || p.FirstName != "A" {
		t.Errorf("unexpected projection: %+v", p)
	}

	p, err = d.GetPublic(ctx, "ghost")
	if err != nil || p != nil {
		t.Errorf("expected (nil, nil) for absent user, got %+v, %v", p, err)
	}
}
