package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// attemptLimiter remembers failure times per key and refuses a key once it
// has limit failures inside the trailing window. Counts are kept in memory
// only.
type attemptLimiter struct {
	limit  int
	window time.Duration

	mu       sync.Mutex
	failures map[string][]time.Time
}

func newAttemptLimiter(limit int, window time.Duration) *attemptLimiter {
	return &attemptLimiter{limit: limit, window: window, failures: map[string][]time.Time{}}
}

// retryAfter is zero while the key may still try. Otherwise it is the time
// until the oldest counted failure leaves the window.
func (limiter *attemptLimiter) retryAfter(key string, now time.Time) time.Duration {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	recent := limiter.prune(key, now)
	if len(recent) < limiter.limit {
		return 0
	}
	wait := recent[len(recent)-limiter.limit].Add(limiter.window).Sub(now)
	if wait < time.Second {
		wait = time.Second
	}
	return wait
}

func (limiter *attemptLimiter) recordFailure(key string, now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	limiter.failures[key] = append(limiter.prune(key, now), now)
}

func (limiter *attemptLimiter) reset(key string) {
	limiter.mu.Lock()
	delete(limiter.failures, key)
	limiter.mu.Unlock()
}

// prune must be called with mu held.
func (limiter *attemptLimiter) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-limiter.window)
	times := limiter.failures[key]
	first := 0
	for first < len(times) && !times[first].After(cutoff) {
		first++
	}
	if first == len(times) {
		delete(limiter.failures, key)
		return nil
	}
	times = times[first:]
	limiter.failures[key] = times
	return times
}

// requestLimiterKey keys login throttling on the client address.
func requestLimiterKey(c *fiber.Ctx) string {
	if ip := strings.TrimSpace(c.IP()); ip != "" {
		return ip
	}
	return "unknown"
}
