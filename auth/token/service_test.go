package token

import (
	"errors"
	"testing"
	"time"
)

func newTestService(t *testing.T, secret string) *Service {
	t.Helper()
	svc, err := NewService(Config{Secret: secret})
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

func TestNewService_RequiresSecret(t *testing.T) {
	if _, err := NewService(Config{}); err == nil {
		t.Error("expected error for missing secret")
	}
}

func TestService_RoundTrip(t *testing.T) {
	svc := newTestService(t, "test-secret")

	signed, expiresAt, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if signed == "" {
		t.Fatal("expected non-empty token")
	}
	if !expiresAt.After(time.Now()) {
		t.Error("expected expiry in the future")
	}

	claims, err := svc.Decode(signed)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("expected subject alice, got %s", claims.Subject)
	}
}

func TestService_Decode_Expired(t *testing.T) {
	svc := newTestService(t, "test-secret")

	signed, _, err := svc.IssueWithTTL("alice", -1*time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = svc.Decode(signed)
	if !errors.Is(err, ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
}

func TestService_Decode_WrongSecret(t *testing.T) {
	issuer := newTestService(t, "secret-a")
	verifier := newTestService(t, "secret-b")

	signed, _, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = verifier.Decode(signed)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestService_Decode_Garbage(t *testing.T) {
	svc := newTestService(t, "test-secret")

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := svc.Decode(tok); !errors.Is(err, ErrMalformed) {
			t.Errorf("token %q: expected ErrMalformed, got %v", tok, err)
		}
	}
}

func TestService_Issue_EmptySubject(t *testing.T) {
	svc := newTestService(t, "test-secret")
	if _, _, err := svc.Issue(""); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed for empty subject, got %v", err)
	}
}

func TestService_Issue_UniquePerCall(t *testing.T) {
	svc := newTestService(t, "test-secret")

	a, _, err := svc.IssueWithTTL("alice", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	b, _, err := svc.IssueWithTTL("alice", 2*time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if a == b {
		t.Error("expected different tokens for different TTLs")
	}
}

func TestConfig_TTLDefault(t *testing.T) {
	cfg := Config{Secret: "s"}
	cfg.ApplyDefaults()
	if cfg.TTL() != time.Hour {
		t.Errorf("expected default 60m TTL, got %v", cfg.TTL())
	}
}
