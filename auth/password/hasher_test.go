package password

import (
	"errors"
	"strings"
	"testing"
)

func TestHasher_Hash_NotReversible(t *testing.T) {
	h := NewHasher(WithCost(4))
	hash, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "pw123" {
		t.Error("hash must not equal the plain password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected bcrypt format, got %s", hash)
	}
}

func TestHasher_Hash_SaltedPerCall(t *testing.T) {
	h := NewHasher(WithCost(4))
	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if a == b {
		t.Error("expected different hashes for the same password (random salt)")
	}
}

func TestHasher_Verify_Match(t *testing.T) {
	h := NewHasher(WithCost(4))
	hash, _ := h.Hash("pw123")

	ok, err := h.Verify("pw123", hash)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !ok {
		t.Error("expected correct password to verify")
	}
}

func TestHasher_Verify_Mismatch(t *testing.T) {
	h := NewHasher(WithCost(4))
	hash, _ := h.Hash("pw123")

	ok, err := h.Verify("wrong", hash)
	if err != nil {
		t.Fatalf("mismatch must not be an error: %v", err)
	}
	if ok {
		t.Error("expected wrong password to fail verification")
	}
}

func TestHasher_Verify_MalformedStored(t *testing.T) {
	h := NewHasher()
	ok, err := h.Verify("pw123", "not-a-bcrypt-hash")
	if ok {
		t.Error("malformed stored hash must not verify")
	}
	if !errors.Is(err, ErrMalformedHash) {
		t.Errorf("expected ErrMalformedHash, got %v", err)
	}
}

func TestHasher_Hash_Empty(t *testing.T) {
	h := NewHasher()
	if _, err := h.Hash(""); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestHasher_Hash_TooLong(t *testing.T) {
	h := NewHasher()
	if _, err := h.Hash(strings.Repeat("a", 73)); err == nil {
		t.Error("expected error above the bcrypt length limit")
	}
}

func TestWithCost_OutOfRangeIgnored(t *testing.T) {
	h := NewHasher(WithCost(99))
	if h.cost != 12 {
		t.Errorf("out-of-range cost should keep default, got %d", h.cost)
	}
}
