// Package value defines the tagged union stored in speaker partitions.
//
// Value is a sealed interface: only Null, Number, Text, and Bool implement
// it. Bool is part of the type tag's definition but no write path produces
// it — it is reserved for a future value kind and must stay unreachable.
package value

import "strconv"

// Value is the sealed union of variable value types.
type Value interface {
	value() // sealed — only the types below implement it
}

// Null is the value of an unset variable.
type Null struct{}

func (Null) value() {}

// Number is a 64-bit floating point value.
type Number float64

func (Number) value() {}

// Text is a bounded string value.
type Text string

func (Text) value() {}

// Bool is reserved. No write path produces it.
type Bool bool

func (Bool) value() {}

// Kind is the type tag of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindText
	KindBool // reserved, never produced
)

// String returns the lowercase tag name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the kind as its lowercase tag name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// KindOf returns the type tag for v. A nil Value is KindNull.
func KindOf(v Value) Kind {
	switch v.(type) {
	case Number:
		return KindNumber
	case Text:
		return KindText
	case Bool:
		return KindBool
	default:
		return KindNull
	}
}

// AsNumber converts v to a float64 for a numeric read.
//
// Text values get a best-effort numeric parse, yielding 0 on failure.
// Everything else that is not a Number yields 0.
func AsNumber(v Value) float64 {
	switch val := v.(type) {
	case Number:
		return float64(val)
	case Text:
		f, err := strconv.ParseFloat(string(val), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// AsText converts v to a string for a text read.
//
// Only Text values produce text; numeric values yield "" rather than an
// implicit stringification. The asymmetry with AsNumber is part of the
// read contract and must be preserved.
func AsText(v Value) string {
	if t, ok := v.(Text); ok {
		return string(t)
	}
	return ""
}
