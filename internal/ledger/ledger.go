// Package ledger implements the append-only, hash-chained record of every
// state-changing and read operation.
//
// Entries are immutable once appended: no entry is ever rewritten or
// removed. The chain anchors on the literal "genesis" sentinel and each
// entry carries the checksum of its predecessor, which is the only thing
// that makes prior state tamper-evident.
package ledger

import "github.com/jaredlewiswechs/HumanLogica/internal/hashchain"

const (
	// Genesis is the predecessor hash of the first entry.
	Genesis = "genesis"

	// MaxEntries is the fixed capacity ceiling. Appends beyond it are
	// silently dropped.
	MaxEntries = 8192
)

// StatusActive is the activity flag recorded on every entry the kernel
// produces. The field is reserved for richer evaluation states.
const StatusActive = "active"

// Clock supplies timestamps for appended entries.
type Clock interface {
	Now() float64
}

// Entry is one immutable record in the ledger.
//
// Status and BreakReason are stored but excluded from the hash input, so
// tampering with either alone is undetectable by Verify. That asymmetry is
// a documented part of the contract — widening the hash input would break
// chain verification against other implementations.
type Entry struct {
	EntryID     int     `json:"entry_id"`
	SpeakerID   int     `json:"speaker_id"`
	Operation   string  `json:"operation"`
	Action      string  `json:"action"`
	Status      string  `json:"status"`
	Timestamp   float64 `json:"timestamp"`
	PrevHash    string  `json:"prev_hash"`
	EntryHash   string  `json:"entry_hash"`
	BreakReason string  `json:"break_reason,omitempty"`
}

// text returns the canonical hash input rebuilt from the entry's own fields.
func (e *Entry) text() string {
	return hashchain.EntryText(e.EntryID, e.SpeakerID, e.Operation, e.Action, e.Timestamp, e.PrevHash)
}

// Ledger is the append-only entry sequence.
//
// Not safe for concurrent use: appends require a strict total order, so a
// concurrent host must guard the whole kernel behind one exclusive section.
type Ledger struct {
	entries  []Entry
	lastHash string
	clock    Clock
}

// New creates an empty ledger anchored on the genesis sentinel.
func New(clock Clock) *Ledger {
	return &Ledger{lastHash: Genesis, clock: clock}
}

// Append records a new entry and returns it.
//
// At the capacity ceiling the append is silently dropped and ok is false;
// no timestamp is consumed from the clock in that case. Callers exposing
// the public surface must treat a dropped append as an unsignaled outcome.
func (l *Ledger) Append(speakerID int, operation, action, status string) (Entry, bool) {
	if len(l.entries) >= MaxEntries {
		return Entry{}, false
	}

	e := Entry{
		EntryID:   len(l.entries),
		SpeakerID: speakerID,
		Operation: operation,
		Action:    action,
		Status:    status,
		Timestamp: l.clock.Now(),
		PrevHash:  l.lastHash,
	}
	e.EntryHash = hashchain.Sum(e.text())

	l.lastHash = e.EntryHash
	l.entries = append(l.entries, e)
	return e, true
}

// Verify walks the full chain. Entry 0 must anchor on genesis, every later
// entry must link to its predecessor's hash, and every entry's hash must
// match a recompute from its own fields. An empty ledger verifies true.
func (l *Ledger) Verify() bool {
	return VerifyEntries(l.entries)
}

// VerifyEntries runs chain verification over an entry sequence that may
// live outside a Ledger, such as rows read back from an archive.
func VerifyEntries(entries []Entry) bool {
	prev := Genesis
	for i := range entries {
		e := &entries[i]
		if e.PrevHash != prev {
			return false
		}
		if e.EntryHash != hashchain.Sum(e.text()) {
			return false
		}
		prev = e.EntryHash
	}
	return true
}

// Count returns the number of entries.
func (l *Ledger) Count() int {
	return len(l.entries)
}

// Last returns the most recent entry, if any.
func (l *Ledger) Last() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// LastHash returns the hash the next entry will link to, or genesis for an
// empty ledger.
func (l *Ledger) LastHash() string {
	return l.lastHash
}

// Entries returns a copy of the full entry sequence.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Select returns copies of the entries matching pred, in chain order.
// Inspection collaborators use this to build filtered views.
func (l *Ledger) Select(pred func(Entry) bool) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}
