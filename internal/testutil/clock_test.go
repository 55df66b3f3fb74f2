package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock_AdvancesByStep(t *testing.T) {
	c := NewClock(1000.0, 0.5)

	assert.Equal(t, 1000.5, c.Now())
	assert.Equal(t, 1001.0, c.Now())
	assert.Equal(t, 1001.0, c.Current())
}

func TestClock_ResetRewindsToEpoch(t *testing.T) {
	c := NewClock(1000.0, 0.5)
	c.Now()
	c.Now()

	c.Reset()
	assert.Equal(t, 1000.0, c.Current())
	assert.Equal(t, 1000.5, c.Now())
}
