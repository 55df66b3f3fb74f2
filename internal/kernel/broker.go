package kernel

// MaxRequests is the fixed ceiling of the request table, pending and
// resolved together.
const MaxRequests = 256

// RequestStatus is a request's lifecycle state. Requests are created
// Pending and transition exactly once, to Accepted or Refused.
type RequestStatus int

const (
	Pending RequestStatus = iota
	Accepted
	Refused
)

// String returns the lowercase status name.
func (s RequestStatus) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case Refused:
		return "refused"
	default:
		return "pending"
	}
}

// MarshalJSON renders the status as its lowercase name.
func (s RequestStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Request is a proposal from one speaker to another. Only the target may
// resolve it, once; it is terminal thereafter.
type Request struct {
	RequestID   int           `json:"request_id"`
	FromSpeaker int           `json:"from_speaker"`
	ToSpeaker   int           `json:"to_speaker"`
	Action      string        `json:"action"`
	Status      RequestStatus `json:"status"`
	CreatedAt   float64       `json:"created_at"`
}

// requestBroker holds requests in creation order. Request ids come from an
// independent monotonic counter, not the table position, so removing
// served requests would not corrupt ids.
type requestBroker struct {
	requests []Request
	nextID   int
}

// full reports whether the table is at capacity.
func (b *requestBroker) full() bool {
	return len(b.requests) >= MaxRequests
}

// create stores a new pending request and returns its id. The caller has
// already checked capacity and speaker references.
func (b *requestBroker) create(fromID, toID int, action string, createdAt float64) int {
	rid := b.nextID
	b.nextID++
	b.requests = append(b.requests, Request{
		RequestID:   rid,
		FromSpeaker: fromID,
		ToSpeaker:   toID,
		Action:      action,
		Status:      Pending,
		CreatedAt:   createdAt,
	})
	return rid
}

// respond resolves the first pending request matching requestID.
//
// A missing or already-resolved id fails. A pending match with the wrong
// responder also fails — silently, by contract: responding as the wrong
// party leaves no trace. Only a successful transition reports true.
func (b *requestBroker) respond(responderID, requestID int, accept bool) bool {
	for i := range b.requests {
		r := &b.requests[i]
		if r.RequestID != requestID || r.Status != Pending {
			continue
		}
		if r.ToSpeaker != responderID {
			return false
		}
		if accept {
			r.Status = Accepted
		} else {
			r.Status = Refused
		}
		return true
	}
	return false
}

// pendingCount counts pending requests addressed to speakerID.
func (b *requestBroker) pendingCount(speakerID int) int {
	n := 0
	for i := range b.requests {
		if b.requests[i].ToSpeaker == speakerID && b.requests[i].Status == Pending {
			n++
		}
	}
	return n
}

// pendingFor returns copies of pending requests addressed to speakerID,
// in creation order.
func (b *requestBroker) pendingFor(speakerID int) []Request {
	var out []Request
	for i := range b.requests {
		if b.requests[i].ToSpeaker == speakerID && b.requests[i].Status == Pending {
			out = append(out, b.requests[i])
		}
	}
	return out
}
