package ledger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tickClock mirrors the kernel's counter clock without importing it.
type tickClock struct{ t float64 }

func newTickClock() *tickClock { return &tickClock{t: 1740000000.0} }

func (c *tickClock) Now() float64 {
	c.t += 0.001
	return c.t
}

func TestLedger_EmptyVerifiesTrue(t *testing.T) {
	l := New(newTickClock())
	assert.True(t, l.Verify())
	assert.Equal(t, 0, l.Count())
	assert.Equal(t, Genesis, l.LastHash())

	_, ok := l.Last()
	assert.False(t, ok)
}

func TestLedger_GenesisAnchor(t *testing.T) {
	l := New(newTickClock())
	e, ok := l.Append(0, "boot", "mary_initialized", StatusActive)
	require.True(t, ok)

	assert.Equal(t, Genesis, e.PrevHash)
	assert.Equal(t, 0, e.EntryID)
	assert.InDelta(t, 1740000000.001, e.Timestamp, 1e-6)
	assert.True(t, l.Verify())
}

func TestLedger_ChainLinks(t *testing.T) {
	l := New(newTickClock())
	first, _ := l.Append(0, "boot", "mary_initialized", StatusActive)
	second, _ := l.Append(1, "write", "write:score", StatusActive)
	third, _ := l.Append(2, "read", "read:1.score", StatusActive)

	assert.Equal(t, first.EntryHash, second.PrevHash)
	assert.Equal(t, second.EntryHash, third.PrevHash)
	assert.Equal(t, third.EntryHash, l.LastHash())
	assert.Equal(t, 3, l.Count())
	assert.True(t, l.Verify())

	last, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, third, last)
}

func TestLedger_TamperDetection(t *testing.T) {
	build := func() *Ledger {
		l := New(newTickClock())
		l.Append(0, "boot", "mary_initialized", StatusActive)
		l.Append(1, "write", "write:score", StatusActive)
		l.Append(2, "read", "read:1.score", StatusActive)
		return l
	}

	tampers := map[string]func(*Entry){
		"entry_id":   func(e *Entry) { e.EntryID++ },
		"speaker_id": func(e *Entry) { e.SpeakerID++ },
		"operation":  func(e *Entry) { e.Operation = "seal" },
		"action":     func(e *Entry) { e.Action = "write:grade" },
		"timestamp":  func(e *Entry) { e.Timestamp += 0.001 },
		"prev_hash":  func(e *Entry) { e.PrevHash = "00000000" },
		"entry_hash": func(e *Entry) { e.EntryHash = "00000000" },
	}

	for field, tamper := range tampers {
		for idx := 0; idx < 3; idx++ {
			l := build()
			require.True(t, l.Verify())
			tamper(&l.entries[idx])
			assert.False(t, l.Verify(), "tampering %s on entry %d must break verification", field, idx)
		}
	}
}

func TestLedger_StatusAndBreakReasonOutsideHash(t *testing.T) {
	// Documented asymmetry: status and break_reason are not part of the
	// checksum input, so mutating them alone is undetectable.
	l := New(newTickClock())
	l.Append(0, "boot", "mary_initialized", StatusActive)
	l.Append(1, "write", "write:score", StatusActive)

	l.entries[1].Status = "inactive"
	assert.True(t, l.Verify())

	l.entries[0].BreakReason = "injected"
	assert.True(t, l.Verify())
}

func TestLedger_CapacityDropIsSilent(t *testing.T) {
	l := New(newTickClock())
	for i := 0; i < MaxEntries; i++ {
		_, ok := l.Append(0, "write", fmt.Sprintf("write:v%d", i), StatusActive)
		require.True(t, ok)
	}
	require.Equal(t, MaxEntries, l.Count())
	before := l.LastHash()

	_, ok := l.Append(0, "write", "write:overflow", StatusActive)
	assert.False(t, ok)
	assert.Equal(t, MaxEntries, l.Count())
	assert.Equal(t, before, l.LastHash())
	assert.True(t, l.Verify())
}

func TestLedger_CapacityDropConsumesNoTick(t *testing.T) {
	clock := newTickClock()
	l := New(clock)
	for i := 0; i < MaxEntries; i++ {
		l.Append(0, "write", "write:v", StatusActive)
	}
	before := clock.t

	l.Append(0, "write", "write:overflow", StatusActive)
	assert.Equal(t, before, clock.t)
}

func TestLedger_Select(t *testing.T) {
	l := New(newTickClock())
	l.Append(0, "boot", "mary_initialized", StatusActive)
	l.Append(1, "write", "write:score", StatusActive)
	l.Append(1, "write", "write:score", StatusActive)
	l.Append(2, "read", "read:1.score", StatusActive)

	writes := l.Select(func(e Entry) bool {
		return e.SpeakerID == 1 && e.Action == "write:score"
	})
	require.Len(t, writes, 2)
	assert.Equal(t, 1, writes[0].EntryID)
	assert.Equal(t, 2, writes[1].EntryID)

	none := l.Select(func(e Entry) bool { return e.Operation == "seal" })
	assert.Empty(t, none)
}

func TestLedger_EntriesReturnsCopy(t *testing.T) {
	l := New(newTickClock())
	l.Append(0, "boot", "mary_initialized", StatusActive)

	snap := l.Entries()
	snap[0].Action = "mutated"
	assert.True(t, l.Verify(), "mutating a snapshot must not reach the ledger")
	assert.Equal(t, "mary_initialized", l.entries[0].Action)
}

func TestVerifyEntries_Detached(t *testing.T) {
	l := New(newTickClock())
	l.Append(0, "boot", "mary_initialized", StatusActive)
	l.Append(1, "write", "write:score", StatusActive)

	entries := l.Entries()
	assert.True(t, VerifyEntries(entries))

	entries[1].Action = "write:grade"
	assert.False(t, VerifyEntries(entries))

	assert.True(t, VerifyEntries(nil))
}
