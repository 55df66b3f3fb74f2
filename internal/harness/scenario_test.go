package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Classroom(t *testing.T) {
	sc, err := Load("testdata/scenarios/classroom.yaml")
	require.NoError(t, err)

	assert.Equal(t, "classroom", sc.Name)
	assert.Equal(t, "classroom-fixture-001", sc.RunToken)
	assert.Len(t, sc.Steps, 8)
	assert.Len(t, sc.Checks, 8)
	assert.Equal(t, "create_speaker", sc.Steps[0].Op)
	assert.Equal(t, "Teacher", sc.Steps[0].Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/scenarios/does-not-exist.yaml")
	require.Error(t, err)
}

func TestParse_RejectsUnknownOp(t *testing.T) {
	_, err := Parse([]byte(`
name: bad-op
steps:
  - op: teleport
    caller: 0
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario schema")
}

func TestParse_RejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte(`
name: bad-field
steps:
  - op: write
    caller: 1
    name: x
    number: 1
    velocity: 9
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario schema")
}

func TestParse_RejectsMissingName(t *testing.T) {
	_, err := Parse([]byte(`
steps:
  - op: seal
    caller: 1
    name: x
`))
	require.Error(t, err)
}

func TestParse_RejectsUnknownCheckType(t *testing.T) {
	_, err := Parse([]byte(`
name: bad-check
steps:
  - op: seal
    caller: 1
    name: x
checks:
  - type: vibes
`))
	require.Error(t, err)
}

func TestParse_NormalizesToNFC(t *testing.T) {
	// "cafe" followed by a combining acute accent; NFC composes it.
	sc, err := Parse([]byte("name: nfc\nsteps:\n  - op: write\n    caller: 1\n    name: \"café\"\n    number: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, "café", sc.Steps[0].Name)
}

func TestParse_EmptyStepsAllowed(t *testing.T) {
	sc, err := Parse([]byte("name: empty\nsteps: []\n"))
	require.NoError(t, err)
	assert.Empty(t, sc.Steps)
}
