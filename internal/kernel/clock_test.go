package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterClock_StartsAfterEpoch(t *testing.T) {
	c := NewCounterClock()
	// Accumulated sums sit within one ULP of the decimal values, which
	// is far inside the %.3f rendering tolerance the chain depends on.
	assert.InDelta(t, 1740000000.001, c.Now(), 1e-6, "first tick is epoch + step")
	assert.InDelta(t, 1740000000.002, c.Now(), 1e-6)
	assert.InDelta(t, 1740000000.003, c.Now(), 1e-6)
}

func TestCounterClock_Independent(t *testing.T) {
	a := NewCounterClock()
	b := NewCounterClock()
	a.Now()
	a.Now()
	assert.InDelta(t, 1740000000.001, b.Now(), 1e-6, "clocks do not share state")
}
