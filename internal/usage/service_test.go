package usage

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConsumeWithinLimit(t *testing.T) {
	svc := NewService()

	u, err := svc.Consume(context.Background(), "user-1", 1)
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if u.Used != 1 {
		t.Fatalf("expected used=1, got %d", u.Used)
	}
}

func TestConsumeBeyondLimitFails(t *testing.T) {
	svc := NewService()

	if _, err := svc.Consume(context.Background(), "user-1", 10); err != nil {
		t.Fatalf("Consume to limit: %v", err)
	}
	_, err := svc.Consume(context.Background(), "user-1", 1)
	if !errors.Is(err, ErrLimitReached) {
		t.Fatalf("expected ErrLimitReached, got %v", err)
	}

	ok, _, err := svc.CanConsume(context.Background(), "user-1", 1)
	if err != nil {
		t.Fatalf("CanConsume: %v", err)
	}
	if ok {
		t.Fatalf("expected CanConsume false at limit")
	}
}

func TestExpiredWindowResets(t *testing.T) {
	store := newMemoryStore()
	store.data["user-1"] = Usage{
		Plan:     "Starter",
		Limit:    10,
		Used:     10,
		ResetsAt: time.Now().UTC().Add(-time.Minute),
	}
	svc := NewPostgresService(store)

	u, err := svc.EnsurePeriod(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("EnsurePeriod: %v", err)
	}
	if u.Used != 0 {
		t.Fatalf("expected used reset to 0, got %d", u.Used)
	}
	if !u.ResetsAt.After(time.Now().UTC()) {
		t.Fatalf("expected future reset time, got %s", u.ResetsAt)
	}
}

func TestResetClearsUsage(t *testing.T) {
	svc := NewService()

	if _, err := svc.Consume(context.Background(), "user-1", 3); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	u, err := svc.Reset(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if u.Used != 0 {
		t.Fatalf("expected used=0 after reset, got %d", u.Used)
	}
}
