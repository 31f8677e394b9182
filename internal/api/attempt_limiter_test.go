package api

import (
	"testing"
	"time"
)

func (limiter *attemptLimiter) blocked(key string, now time.Time) bool {
	return limiter.retryAfter(key, now) > 0
}

func TestAttemptLimiterWindowAndReset(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter(2, time.Hour)
	key := "127.0.0.1"
	now := time.Now().UTC()

	limiter.recordFailure(key, now.Add(-2*time.Hour))
	limiter.recordFailure(key, now.Add(-90*time.Minute))
	if limiter.blocked(key, now) {
		t.Fatal("expected attempts outside the window to be pruned")
	}

	limiter.recordFailure(key, now.Add(-30*time.Minute))
	if limiter.blocked(key, now) {
		t.Fatal("expected one recent failure to stay under limit 2")
	}
	limiter.recordFailure(key, now.Add(-time.Minute))
	if !limiter.blocked(key, now) {
		t.Fatal("expected two recent failures to hit limit 2")
	}
	if limiter.blocked("10.0.0.9", now) {
		t.Fatal("expected other keys to be unaffected")
	}

	limiter.reset(key)
	if limiter.blocked(key, now) {
		t.Fatal("expected no attempts after reset")
	}
}

func TestAttemptLimiterRetryAfterCountsFromOldestFailure(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter(2, 15*time.Minute)
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	limiter.recordFailure("10.1.1.1", now.Add(-10*time.Minute))
	if wait := limiter.retryAfter("10.1.1.1", now); wait != 0 {
		t.Fatalf("expected no wait below the limit, got %s", wait)
	}

	limiter.recordFailure("10.1.1.1", now.Add(-4*time.Minute))
	if wait := limiter.retryAfter("10.1.1.1", now); wait != 5*time.Minute {
		t.Fatalf("expected 5m wait, got %s", wait)
	}
	if wait := limiter.retryAfter("10.1.1.1", now.Add(5*time.Minute)); wait != 0 {
		t.Fatalf("expected the window to reopen after 5m, got %s", wait)
	}
}
