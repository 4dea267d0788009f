package trace

import (
	"context"
	"sync"
	"testing"
)

func TestNewID_Unique(t *testing.T) {
	a := NewID()
	b := NewID()
	if a == "" || b == "" {
		t.Fatal("expected non-empty IDs")
	}
	if a == b {
		t.Fatalf("expected unique IDs, got %s twice", a)
	}
}

func TestID_RoundTrip(t *testing.T) {
	ctx := WithID(context.Background(), "abc-123")
	if got := ID(ctx); got != "abc-123" {
		t.Fatalf("expected abc-123, got %s", got)
	}
}

func TestID_Missing(t *testing.T) {
	if got := ID(context.Background()); got != "" {
		t.Fatalf("expected empty ID for bare context, got %s", got)
	}
}

func TestID_Isolation(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := NewID()
			ctx := WithID(context.Background(), id)
			if got := ID(ctx); got != id {
				t.Errorf("expected %s, got %s", id, got)
			}
		}()
	}
	wg.Wait()
}
