package middleware

import (
	"fmt"
	"testing"
	"time"
)

func newTestLimiter(start time.Time) (*RateLimiter, *time.Time) {
	now := start
	rl := NewRateLimiter()
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestAllowWithinWindow(t *testing.T) {
	rl, _ := newTestLimiter(time.Unix(1000, 0))

	for i := 1; i <= 5; i++ {
		if !rl.Allow("ip:1.2.3.4", 5, time.Minute) {
			t.Fatalf("call %d should be allowed", i)
		}
	}

	if rl.Allow("ip:1.2.3.4", 5, time.Minute) {
		t.Error("6th call within the window should be denied")
	}
}

func TestWindowReset(t *testing.T) {
	rl, now := newTestLimiter(time.Unix(1000, 0))

	for i := 0; i < 5; i++ {
		rl.Allow("key", 5, time.Minute)
	}
	if rl.Allow("key", 5, time.Minute) {
		t.Fatal("limit should be reached")
	}

	*now = now.Add(time.Minute)
	if !rl.Allow("key", 5, time.Minute) {
		t.Error("call after the window elapsed should be allowed")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	rl, _ := newTestLimiter(time.Unix(1000, 0))

	for i := 0; i < 5; i++ {
		rl.Allow("a", 5, time.Minute)
	}
	if rl.Allow("a", 5, time.Minute) {
		t.Fatal("key a should be exhausted")
	}
	if !rl.Allow("b", 5, time.Minute) {
		t.Error("key b should have its own counter")
	}
}

func TestLimitOne(t *testing.T) {
	rl, _ := newTestLimiter(time.Unix(1000, 0))

	if !rl.Allow("k", 1, time.Minute) {
		t.Fatal("first call should be allowed")
	}
	if rl.Allow("k", 1, time.Minute) {
		t.Error("second call should be denied with limit 1")
	}
}

func TestCleanup(t *testing.T) {
	rl, now := newTestLimiter(time.Unix(1000, 0))

	for i := 0; i < 10; i++ {
		rl.Allow(fmt.Sprintf("key-%d", i), 5, time.Minute)
	}
	if len(rl.buckets) != 10 {
		t.Fatalf("expected 10 buckets, got %d", len(rl.buckets))
	}

	*now = now.Add(10 * time.Minute)
	rl.Cleanup(5 * time.Minute)

	if len(rl.buckets) != 0 {
		t.Errorf("expected stale buckets removed, got %d", len(rl.buckets))
	}
}
