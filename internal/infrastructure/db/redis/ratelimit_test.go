package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type stubCounterCmds struct {
	counts      map[string]int64
	hasTTL      map[string]bool
	expireErr   error
	expireCalls int
	delCalls    int
}

func newStubCounterCmds() *stubCounterCmds {
	return &stubCounterCmds{
		counts: make(map[string]int64),
		hasTTL: make(map[string]bool),
	}
}

func (s *stubCounterCmds) Incr(_ context.Context, key string) *redis.IntCmd {
	s.counts[key]++
	return redis.NewIntResult(s.counts[key], nil)
}

func (s *stubCounterCmds) ExpireNX(_ context.Context, key string, _ time.Duration) *redis.BoolCmd {
	s.expireCalls++
	if s.expireErr != nil {
		return redis.NewBoolResult(false, s.expireErr)
	}
	if s.hasTTL[key] {
		return redis.NewBoolResult(false, nil)
	}
	s.hasTTL[key] = true
	return redis.NewBoolResult(true, nil)
}

func (s *stubCounterCmds) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(s.counts, k)
		delete(s.hasTTL, k)
		s.delCalls++
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestRequestCounter_CountsWithinWindow(t *testing.T) {
	stub := newStubCounterCmds()
	counter := &RequestCounter{client: stub, window: time.Hour}

	for want := int64(1); want <= 3; want++ {
		n, err := counter.Incr(context.Background(), "10.0.0.1")
		if err != nil {
			t.Fatalf("Incr returned error: %v", err)
		}
		if n != want {
			t.Fatalf("expected count %d, got %d", want, n)
		}
	}
	if !stub.hasTTL["ratelimit:10.0.0.1"] {
		t.Fatalf("window expiry not set")
	}
}

func TestRequestCounter_ExpiryAttemptedOnEveryIncrement(t *testing.T) {
	stub := newStubCounterCmds()
	counter := &RequestCounter{client: stub, window: time.Hour}

	for i := 0; i < 5; i++ {
		if _, err := counter.Incr(context.Background(), "10.0.0.1"); err != nil {
			t.Fatalf("Incr returned error: %v", err)
		}
	}
	if stub.expireCalls != 5 {
		t.Fatalf("expected expiry attempted on each increment, got %d calls", stub.expireCalls)
	}
}

func TestRequestCounter_FreshKeyDroppedWhenExpiryFails(t *testing.T) {
	stub := newStubCounterCmds()
	stub.expireErr = errors.New("connection reset")
	counter := &RequestCounter{client: stub, window: time.Hour}

	if _, err := counter.Incr(context.Background(), "10.0.0.1"); err == nil {
		t.Fatalf("expected error when the expiry cannot be set")
	}
	if stub.delCalls != 1 {
		t.Fatalf("fresh key without a TTL must be dropped, delCalls=%d", stub.delCalls)
	}

	// Store recovers: the next request starts a clean window instead of
	// inheriting an immortal counter.
	stub.expireErr = nil
	n, err := counter.Incr(context.Background(), "10.0.0.1")
	if err != nil {
		t.Fatalf("Incr after recovery returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected a fresh window (count 1), got %d", n)
	}
	if !stub.hasTTL["ratelimit:10.0.0.1"] {
		t.Fatalf("window expiry not set after recovery")
	}
}

func TestRequestCounter_LostTTLHealsOnNextIncrement(t *testing.T) {
	stub := newStubCounterCmds()
	counter := &RequestCounter{client: stub, window: time.Hour}

	// A counter that somehow survived without a TTL.
	stub.counts["ratelimit:10.0.0.1"] = 7

	n, err := counter.Incr(context.Background(), "10.0.0.1")
	if err != nil {
		t.Fatalf("Incr returned error: %v", err)
	}
	if n != 8 {
		t.Fatalf("expected count 8, got %d", n)
	}
	if !stub.hasTTL["ratelimit:10.0.0.1"] {
		t.Fatalf("expiry must be re-established for a key that lost its TTL")
	}
}
