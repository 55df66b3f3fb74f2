package kernel

import "github.com/jaredlewiswechs/HumanLogica/internal/value"

// MaxVars is the fixed slot ceiling of one speaker's partition.
const MaxVars = 256

// slot is one variable in a partition. Overwrites replace the whole value
// and its type tag; partial updates are never observable.
type slot struct {
	name string
	val  value.Value
}

// partition is a speaker's private keyed variable store. Slots keep
// first-write order, and lookup is exact string match over that order —
// the ordering is externally observable via inspection, so it must not be
// replaced by map iteration.
type partition struct {
	slots []slot
}

// find returns the slot index for name, or -1.
func (p *partition) find(name string) int {
	for i := range p.slots {
		if p.slots[i].name == name {
			return i
		}
	}
	return -1
}

// write stores v under name, overwriting in place when the name exists.
// A brand-new name fails when the partition is at capacity.
func (p *partition) write(name string, v value.Value) bool {
	if i := p.find(name); i >= 0 {
		p.slots[i].val = v
		return true
	}
	if len(p.slots) >= MaxVars {
		return false
	}
	p.slots = append(p.slots, slot{name: name, val: v})
	return true
}

// read returns the stored value for name, or Null when absent.
func (p *partition) read(name string) value.Value {
	if i := p.find(name); i >= 0 {
		return p.slots[i].val
	}
	return value.Null{}
}

// names returns variable names in first-write order.
func (p *partition) names() []string {
	out := make([]string, len(p.slots))
	for i := range p.slots {
		out[i] = p.slots[i].name
	}
	return out
}
