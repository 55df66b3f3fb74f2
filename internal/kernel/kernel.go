// Package kernel implements the deterministic audit kernel: named speakers
// sharing partitioned memory under an append-only, hash-chained ledger,
// permanent variable seals, and a request/response handshake.
//
// The kernel is a single logical state machine. Every call runs to
// completion before the next begins, and every state-changing acceptance
// produces exactly one ledger entry while every rejection produces zero
// (reads of a valid owner are audited even on a miss). A multi-threaded
// host must guard the whole kernel behind one exclusive section: ledger
// ordering and store consistency require whole-operation atomicity.
package kernel

import (
	"fmt"
	"log/slog"

	"github.com/jaredlewiswechs/HumanLogica/internal/ledger"
	"github.com/jaredlewiswechs/HumanLogica/internal/value"
)

// Field bounds, in bytes. Names and values are clipped, not rejected,
// matching the wire contract's fixed-width records.
const (
	nameLimit   = 63
	textLimit   = 255
	actionLimit = 255
)

// clip truncates s to at most n bytes.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// Kernel owns the five stores exclusively. Stores never reference each
// other; cross-references are by integer id, resolved here.
type Kernel struct {
	clock  ledger.Clock
	log    *ledger.Ledger
	reg    registry
	parts  []partition // parallel to reg.speakers
	seals  sealTable
	broker requestBroker
	logger *slog.Logger
}

// Option configures a Kernel at construction.
type Option func(*Kernel)

// WithClock replaces the default counter clock. Tests and replay tooling
// inject deterministic clocks here; substituting wall-clock time breaks
// bit-exact chain reproducibility across implementations.
func WithClock(c ledger.Clock) Option {
	return func(k *Kernel) { k.clock = c }
}

// WithLogger sets the slog logger for kernel diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(k *Kernel) { k.logger = l }
}

// New boots a kernel: seeds the root speaker (id 0, always alive) and
// appends the boot entry that anchors the hash chain on genesis.
func New(opts ...Option) *Kernel {
	k := &Kernel{}
	for _, opt := range opts {
		opt(k)
	}
	if k.clock == nil {
		k.clock = NewCounterClock()
	}
	if k.logger == nil {
		k.logger = slog.Default()
	}
	k.log = ledger.New(k.clock)

	// Boot sequence. The root's creation timestamp consumes the first
	// clock tick, the boot entry the second.
	root := k.reg.add("root", k.clock.Now())
	k.parts = append(k.parts, partition{})
	k.audit(root, "boot", "mary_initialized")
	return k
}

// audit appends exactly one ledger entry for an accepted operation.
// A drop at the ledger ceiling is unsignaled to the caller.
func (k *Kernel) audit(speakerID int, operation, action string) {
	action = clip(action, actionLimit)
	e, ok := k.log.Append(speakerID, operation, action, ledger.StatusActive)
	if !ok {
		k.logger.Warn("ledger at capacity, entry dropped",
			"speaker_id", speakerID, "operation", operation, "action", action)
		return
	}
	k.logger.Debug("ledger entry",
		"entry_id", e.EntryID, "speaker_id", speakerID, "operation", operation, "action", action)
}

// ── Speakers ────────────────────────────────────────────────────────────

// CreateSpeaker creates a new speaker and returns its id, or -1 when the
// registry is full or the caller is not an existing, alive speaker.
func (k *Kernel) CreateSpeaker(callerID int, name string) int {
	if len(k.reg.speakers) >= MaxSpeakers {
		return -1
	}
	if !k.reg.alive(callerID) {
		return -1
	}
	id := k.reg.add(clip(name, nameLimit), k.clock.Now())
	k.parts = append(k.parts, partition{})
	k.audit(callerID, "create_speaker", "create:"+name)
	return id
}

// SpeakerCount returns the number of speakers, root included.
func (k *Kernel) SpeakerCount() int {
	return len(k.reg.speakers)
}

// SpeakerName returns a speaker's name, or "unknown" for an out-of-range id.
func (k *Kernel) SpeakerName(id int) string {
	return k.reg.name(id)
}

// SpeakerStatusOf returns a speaker's status. ok is false out of range.
func (k *Kernel) SpeakerStatusOf(id int) (SpeakerStatus, bool) {
	if !k.reg.valid(id) {
		return Alive, false
	}
	return k.reg.speakers[id].Status, true
}

// Speakers returns a copy of all speaker records in creation order.
func (k *Kernel) Speakers() []Speaker {
	out := make([]Speaker, len(k.reg.speakers))
	copy(out, k.reg.speakers)
	return out
}

// ── Partitioned memory ──────────────────────────────────────────────────

// Write stores a numeric value in the caller's own partition. There is no
// cross-speaker write path: a speaker may only write to its own variables.
func (k *Kernel) Write(callerID int, name string, v float64) bool {
	return k.writeValue(callerID, name, value.Number(v))
}

// WriteText stores a text value in the caller's own partition.
func (k *Kernel) WriteText(callerID int, name, text string) bool {
	return k.writeValue(callerID, name, value.Text(clip(text, textLimit)))
}

func (k *Kernel) writeValue(callerID int, name string, v value.Value) bool {
	if !k.reg.alive(callerID) {
		return false
	}
	n := clip(name, nameLimit)
	if k.seals.sealed(callerID, n) {
		return false
	}
	if !k.parts[callerID].write(n, v) {
		return false
	}
	k.audit(callerID, "write", "write:"+n)
	return true
}

// ReadNumber reads any owner's variable as a number; 0 on miss. Text
// values get a best-effort numeric parse. No status or capability check
// gates reads, and a miss on a valid owner is still audited.
func (k *Kernel) ReadNumber(callerID, ownerID int, name string) float64 {
	v, ok := k.readValue(callerID, ownerID, name)
	if !ok {
		return 0
	}
	return value.AsNumber(v)
}

// ReadText reads any owner's variable as text; "" on miss or for a
// numeric value (no implicit stringification).
func (k *Kernel) ReadText(callerID, ownerID int, name string) string {
	v, ok := k.readValue(callerID, ownerID, name)
	if !ok {
		return ""
	}
	return value.AsText(v)
}

// readValue resolves the read and audits it. An out-of-range owner yields
// no entry; any other read, found or not, yields exactly one.
func (k *Kernel) readValue(callerID, ownerID int, name string) (value.Value, bool) {
	if !k.reg.valid(ownerID) {
		return nil, false
	}
	n := clip(name, nameLimit)
	v := k.parts[ownerID].read(n)
	k.audit(callerID, "read", fmt.Sprintf("read:%d.%s", ownerID, n))
	return v, true
}

// TypeOf returns the type tag of (ownerID, name); KindNull for an
// out-of-range owner or unset variable. Never audited.
func (k *Kernel) TypeOf(ownerID int, name string) value.Kind {
	if !k.reg.valid(ownerID) {
		return value.KindNull
	}
	return value.KindOf(k.parts[ownerID].read(clip(name, nameLimit)))
}

// Vars returns the variable names of a partition in first-write order,
// or nil for an out-of-range owner. Never audited.
func (k *Kernel) Vars(ownerID int) []string {
	if !k.reg.valid(ownerID) {
		return nil
	}
	return k.parts[ownerID].names()
}

// ── Seals ───────────────────────────────────────────────────────────────

// Seal permanently write-locks (speakerID, name). The variable need not
// exist yet. Fails on an already-sealed pair or a full seal table.
func (k *Kernel) Seal(speakerID int, name string) bool {
	n := clip(name, nameLimit)
	if !k.seals.seal(speakerID, n) {
		return false
	}
	k.audit(speakerID, "seal", "seal:"+n)
	return true
}

// IsSealed reports whether (speakerID, name) is sealed. Never audited.
func (k *Kernel) IsSealed(speakerID int, name string) bool {
	return k.seals.sealed(speakerID, clip(name, nameLimit))
}

// ── Requests ────────────────────────────────────────────────────────────

// Request creates a pending request from fromID to toID and returns its
// id, or -1 when the table is full or either speaker does not exist.
// Speaker status is not checked here.
func (k *Kernel) Request(fromID, toID int, action string) int {
	if k.broker.full() {
		return -1
	}
	if !k.reg.valid(fromID) || !k.reg.valid(toID) {
		return -1
	}
	a := clip(action, actionLimit)
	rid := k.broker.create(fromID, toID, a, k.clock.Now())
	k.audit(fromID, "request", fmt.Sprintf("request:%d:%s", toID, a))
	return rid
}

// Respond resolves a pending request. Only the target speaker may respond,
// exactly once. A wrong responder fails silently — no ledger entry.
func (k *Kernel) Respond(responderID, requestID int, accept bool) bool {
	if !k.broker.respond(responderID, requestID, accept) {
		return false
	}
	verdict := "refuse"
	if accept {
		verdict = "accept"
	}
	k.audit(responderID, "respond", fmt.Sprintf("respond:%d:%s", requestID, verdict))
	return true
}

// PendingCount counts pending requests addressed to speakerID.
func (k *Kernel) PendingCount(speakerID int) int {
	return k.broker.pendingCount(speakerID)
}

// PendingRequests returns copies of pending requests addressed to
// speakerID, in creation order.
func (k *Kernel) PendingRequests(speakerID int) []Request {
	return k.broker.pendingFor(speakerID)
}

// ── Ledger access ───────────────────────────────────────────────────────

// LedgerCount returns the number of ledger entries.
func (k *Kernel) LedgerCount() int {
	return k.log.Count()
}

// LedgerVerify walks the full hash chain.
func (k *Kernel) LedgerVerify() bool {
	return k.log.Verify()
}

// LedgerEntries returns a copy of the full ledger.
func (k *Kernel) LedgerEntries() []ledger.Entry {
	return k.log.Entries()
}

// LedgerSelect returns the entries matching pred, in chain order.
func (k *Kernel) LedgerSelect(pred func(ledger.Entry) bool) []ledger.Entry {
	return k.log.Select(pred)
}

// LastHash returns the hash the next entry will link to.
func (k *Kernel) LastHash() string {
	return k.log.LastHash()
}

// ── Inspection ──────────────────────────────────────────────────────────

// SpeakerSnapshot is the data behind a speaker inspection view. Rendering
// belongs to external collaborators; the kernel exposes data only.
type SpeakerSnapshot struct {
	Speaker         Speaker  `json:"speaker"`
	Variables       []string `json:"variables"`
	PendingRequests int      `json:"pending_requests"`
}

// InspectSpeaker snapshots a speaker's state and audits the inspection.
// An out-of-range target is rejected with no entry.
func (k *Kernel) InspectSpeaker(callerID, targetID int) (SpeakerSnapshot, error) {
	if !k.reg.valid(targetID) {
		return SpeakerSnapshot{}, invalidReference("inspect_speaker", fmt.Sprintf("speaker %d", targetID))
	}
	snap := SpeakerSnapshot{
		Speaker:         k.reg.speakers[targetID],
		Variables:       k.parts[targetID].names(),
		PendingRequests: k.broker.pendingCount(targetID),
	}
	k.audit(callerID, "inspect", fmt.Sprintf("inspect:%d", targetID))
	return snap, nil
}

// VariableHistory is the data behind a variable history view: the current
// value plus every ledger write entry for the variable.
type VariableHistory struct {
	OwnerID   int            `json:"owner_id"`
	OwnerName string         `json:"owner_name"`
	Name      string         `json:"name"`
	Kind      value.Kind     `json:"kind"`
	Number    float64        `json:"number,omitempty"`
	Text      string         `json:"text,omitempty"`
	Writes    []ledger.Entry `json:"writes"`
}

// InspectVariable snapshots a variable's current value and its write
// history from the ledger, and audits the inspection as a history lookup.
func (k *Kernel) InspectVariable(callerID, ownerID int, name string) (VariableHistory, error) {
	if !k.reg.valid(ownerID) {
		return VariableHistory{}, invalidReference("inspect_variable", fmt.Sprintf("speaker %d", ownerID))
	}
	n := clip(name, nameLimit)
	v := k.parts[ownerID].read(n)

	h := VariableHistory{
		OwnerID:   ownerID,
		OwnerName: k.reg.name(ownerID),
		Name:      n,
		Kind:      value.KindOf(v),
	}
	switch val := v.(type) {
	case value.Number:
		h.Number = float64(val)
	case value.Text:
		h.Text = string(val)
	}
	h.Writes = k.log.Select(func(e ledger.Entry) bool {
		return e.SpeakerID == ownerID && e.Action == "write:"+n
	})

	k.audit(callerID, "inspect", fmt.Sprintf("history:%d.%s", ownerID, n))
	return h, nil
}
