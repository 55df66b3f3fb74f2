package kernel

// MaxSeals is the fixed capacity ceiling of the seal table.
const MaxSeals = 256

// sealKey identifies one permanently write-locked variable. Sealing does
// not require the variable to exist: pre-sealing a name blocks all future
// writes to it.
type sealKey struct {
	speakerID int
	name      string
}

// sealTable records sealed pairs in seal order. Once present a pair can
// never be removed.
type sealTable struct {
	keys []sealKey
}

// sealed reports whether (speakerID, name) is sealed.
func (t *sealTable) sealed(speakerID int, name string) bool {
	for _, k := range t.keys {
		if k.speakerID == speakerID && k.name == name {
			return true
		}
	}
	return false
}

// seal records the pair. Fails when already sealed or the table is full.
func (t *sealTable) seal(speakerID int, name string) bool {
	if len(t.keys) >= MaxSeals {
		return false
	}
	if t.sealed(speakerID, name) {
		return false
	}
	t.keys = append(t.keys, sealKey{speakerID: speakerID, name: name})
	return true
}
