package kernel

// Logical clock constants. The counter starts at a fixed epoch and advances
// by a fixed step per consumed timestamp, so independent runs that perform
// the same operation sequence produce bit-identical hash chains. Wall-clock
// time must not be substituted here: it would break cross-implementation
// chain verification.
const (
	clockEpoch = 1740000000.0
	clockStep  = 0.001
)

// CounterClock is the default deterministic logical clock.
//
// A tick is consumed by every ledger append and by the creation timestamp
// of every speaker and request. Not safe for concurrent use; the kernel is
// a single logical state machine.
type CounterClock struct {
	t float64
}

// NewCounterClock returns a clock positioned at the epoch. Its first Now
// call returns epoch + step.
func NewCounterClock() *CounterClock {
	return &CounterClock{t: clockEpoch}
}

// Now advances the clock one step and returns the new time.
func (c *CounterClock) Now() float64 {
	c.t += clockStep
	return c.t
}
