// Package testutil provides deterministic helpers shared by tests across
// packages.
package testutil

import "sync"

// Clock is a thread-safe, resettable logical clock for tests.
//
// Unlike kernel.CounterClock, Clock takes its epoch and step as
// parameters and can be reset, so a test can rewind time and replay the
// same operation sequence expecting identical timestamps.
type Clock struct {
	mu    sync.Mutex
	epoch float64
	step  float64
	t     float64
}

// NewClock creates a clock positioned at epoch. The first Now call
// returns epoch + step.
func NewClock(epoch, step float64) *Clock {
	return &Clock{epoch: epoch, step: step, t: epoch}
}

// Now advances the clock one step and returns the new time.
func (c *Clock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t += c.step
	return c.t
}

// Current returns the clock position without advancing it.
func (c *Clock) Current() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Reset rewinds the clock to its epoch. After Reset, the next Now call
// returns epoch + step again.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.epoch
}
