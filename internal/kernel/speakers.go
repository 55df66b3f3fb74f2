package kernel

// MaxSpeakers is the fixed capacity ceiling of the speaker registry.
const MaxSpeakers = 64

// SpeakerStatus is a speaker's lifecycle state.
type SpeakerStatus int

const (
	// Alive speakers may act.
	Alive SpeakerStatus = iota

	// Suspended is reserved for a future capability. No public operation
	// sets it; writes from a suspended speaker would be rejected.
	Suspended
)

// String returns the lowercase status name.
func (s SpeakerStatus) String() string {
	if s == Suspended {
		return "suspended"
	}
	return "alive"
}

// MarshalJSON renders the status as its lowercase name.
func (s SpeakerStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Speaker is a named principal. Ids are sequential, 0-based, assigned at
// creation and never reused; speakers are never deleted. Speaker 0 is the
// root speaker, created at initialization and always alive.
type Speaker struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	CreatedAt float64       `json:"created_at"`
	Status    SpeakerStatus `json:"status"`
}

// registry holds speaker identities in creation order.
type registry struct {
	speakers []Speaker
}

// valid reports whether id references an existing speaker.
func (r *registry) valid(id int) bool {
	return id >= 0 && id < len(r.speakers)
}

// alive reports whether id references an existing, alive speaker.
func (r *registry) alive(id int) bool {
	return r.valid(id) && r.speakers[id].Status == Alive
}

// add creates the next speaker. The caller has already checked capacity.
func (r *registry) add(name string, createdAt float64) int {
	id := len(r.speakers)
	r.speakers = append(r.speakers, Speaker{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt,
		Status:    Alive,
	})
	return id
}

// name returns the speaker's name, or "unknown" for an out-of-range id.
func (r *registry) name(id int) string {
	if !r.valid(id) {
		return "unknown"
	}
	return r.speakers[id].Name
}
