// Package testutil provides test doubles shared across packages.
package testutil

import (
	"sync"
	"time"
)

// Clock is a settable wall clock for deterministic tests.
//
// Store and bus operations take their notion of "now" from an injected
// function; tests pass c.Now and step time explicitly with Advance, so
// dedup windows, age buckets, and stale warnings can be asserted exactly.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex, matching the store's concurrent publish paths.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a clock frozen at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current clock time. Pass this method as the now
// function to store.WithNow.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d. Negative d moves it backward,
// which tests use to simulate cross-process clock skew.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set moves the clock to an absolute instant.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
