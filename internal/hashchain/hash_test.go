package hashchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum_ReferenceVectors(t *testing.T) {
	// These values are fixed by the interoperability contract.
	assert.Equal(t, "4f9f2cab", Sum("hello"))
	assert.Equal(t, "811c9dc5", Sum(""))
}

func TestSum_ZeroPadded(t *testing.T) {
	// Every checksum renders as exactly 8 hex digits, regardless of
	// leading zeros in the raw value.
	inputs := []string{"hello", "", "a", "genesis", "0:0:boot:mary_initialized"}
	for _, in := range inputs {
		sum := Sum(in)
		assert.Len(t, sum, 8, "Sum(%q) should be 8 hex digits", in)
		for _, c := range sum {
			assert.True(t, (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f'),
				"Sum(%q) contains non-lowercase-hex rune %q", in, c)
		}
	}
}

func TestSum_Distinguishes(t *testing.T) {
	// Collisions are possible by design, but single-character edits on
	// short inputs must not collide in practice.
	assert.NotEqual(t, Sum("hello"), Sum("hellp"))
	assert.NotEqual(t, Sum("write:score"), Sum("write:scores"))
	assert.NotEqual(t, Sum("0:1:write:x:1740000000.003:genesis"),
		Sum("0:1:write:x:1740000000.004:genesis"))
}

func TestSum_Deterministic(t *testing.T) {
	assert.Equal(t, Sum("same input"), Sum("same input"))
}

func TestEntryText_Format(t *testing.T) {
	got := EntryText(0, 0, "boot", "mary_initialized", 1740000000.002, "genesis")
	assert.Equal(t, "0:0:boot:mary_initialized:1740000000.002:genesis", got)
}

func TestEntryText_ThreeDecimalPlaces(t *testing.T) {
	// The timestamp always carries exactly 3 decimals, even when trailing
	// digits are zero.
	got := EntryText(5, 2, "read", "read:1.max_points", 1740000000.5, "4f9f2cab")
	assert.Equal(t, "5:2:read:read:1.max_points:1740000000.500:4f9f2cab", got)

	got = EntryText(1, 0, "write", "write:x", 1740000001.0, "deadbeef")
	assert.Equal(t, "1:0:write:write:x:1740000001.000:deadbeef", got)
}
