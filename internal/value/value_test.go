package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNull, KindOf(Null{}))
	assert.Equal(t, KindNull, KindOf(nil))
	assert.Equal(t, KindNumber, KindOf(Number(3.5)))
	assert.Equal(t, KindText, KindOf(Text("hi")))
	assert.Equal(t, KindBool, KindOf(Bool(true)))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "bool", KindBool.String())
}

func TestAsNumber(t *testing.T) {
	assert.Equal(t, 100.0, AsNumber(Number(100)))
	assert.Equal(t, 0.0, AsNumber(Null{}))
	assert.Equal(t, 0.0, AsNumber(nil))

	// Text values get a best-effort parse.
	assert.Equal(t, 42.5, AsNumber(Text("42.5")))
	assert.Equal(t, -3.0, AsNumber(Text("-3")))
	assert.Equal(t, 0.0, AsNumber(Text("not a number")))
	assert.Equal(t, 0.0, AsNumber(Text("")))
}

func TestAsText_NoImplicitStringification(t *testing.T) {
	assert.Equal(t, "hello", AsText(Text("hello")))

	// Numeric values read as text yield empty, not "100".
	assert.Equal(t, "", AsText(Number(100)))
	assert.Equal(t, "", AsText(Null{}))
	assert.Equal(t, "", AsText(nil))
}
