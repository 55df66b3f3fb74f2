package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaredlewiswechs/HumanLogica/internal/ledger"
	"github.com/jaredlewiswechs/HumanLogica/internal/testutil"
)

func TestRunner_ClassroomGolden(t *testing.T) {
	sc, err := Load("testdata/scenarios/classroom.yaml")
	require.NoError(t, err)

	res := RunWithGolden(t, NewRunner(), sc)
	assert.True(t, res.Ok())
}

func TestRunner_RefusalsGolden(t *testing.T) {
	sc, err := Load("testdata/scenarios/refusals.yaml")
	require.NoError(t, err)

	res := RunWithGolden(t, NewRunner(), sc)
	assert.True(t, res.Ok())
}

func TestRunner_DeterministicAcrossRuns(t *testing.T) {
	sc, err := Load("testdata/scenarios/classroom.yaml")
	require.NoError(t, err)

	r := NewRunner()
	first, err := r.Run(sc)
	require.NoError(t, err)
	second, err := r.Run(sc)
	require.NoError(t, err)

	assert.Equal(t, first.Snapshot, second.Snapshot)
	assert.Equal(t, first.Kernel.LastHash(), second.Kernel.LastHash())
}

func TestRunner_ReportsCheckFailures(t *testing.T) {
	sc, err := Parse([]byte(`
name: failing
steps:
  - op: create_speaker
    caller: 0
    name: Solo
checks:
  - type: ledger_count
    count: 99
  - type: chain_valid
`))
	require.NoError(t, err)

	res, err := NewRunner().Run(sc)
	require.NoError(t, err)
	assert.False(t, res.Ok())
	require.Len(t, res.Failures, 1)
	assert.Contains(t, res.Failures[0], "ledger_count")
}

func TestRunner_RejectedStepsDoNotAbort(t *testing.T) {
	sc, err := Parse([]byte(`
name: keeps-going
steps:
  - op: write
    caller: 42
    name: ghost
    number: 1
  - op: create_speaker
    caller: 0
    name: Real
`))
	require.NoError(t, err)

	res, err := NewRunner().Run(sc)
	require.NoError(t, err)
	require.Len(t, res.Snapshot.Events, 2)
	assert.Equal(t, "rejected", res.Snapshot.Events[0].Result)
	assert.Equal(t, "id=1", res.Snapshot.Events[1].Result)
}

func TestRunner_UnknownOpIsAnError(t *testing.T) {
	// Bypasses Parse: the schema would reject this before it ever
	// reached the runner.
	sc := &Scenario{Name: "broken", Steps: []Step{{Op: "teleport"}}}

	_, err := NewRunner().Run(sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown op")
}

func TestRunner_InjectedClockDrivesTimestamps(t *testing.T) {
	sc, err := Parse([]byte(`
name: clocked
steps:
  - op: create_speaker
    caller: 0
    name: Solo
`))
	require.NoError(t, err)

	clk := testutil.NewClock(500.0, 1.0)
	r := NewRunner(WithClockFactory(func() ledger.Clock {
		clk.Reset()
		return clk
	}))

	res, err := r.Run(sc)
	require.NoError(t, err)

	// Boot consumes two ticks: the root speaker's creation timestamp,
	// then the boot entry itself.
	entries := res.Kernel.LedgerEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, 502.0, entries[0].Timestamp)
	assert.Equal(t, 503.0, entries[1].Timestamp)

	// The factory resets the clock, so a second run replays the exact
	// same chain.
	again, err := r.Run(sc)
	require.NoError(t, err)
	assert.Equal(t, res.Kernel.LastHash(), again.Kernel.LastHash())
}

func TestRunner_TokenGeneratorFillsMissingToken(t *testing.T) {
	sc, err := Parse([]byte("name: untokened\nsteps: []\n"))
	require.NoError(t, err)

	r := NewRunner(WithTokenGenerator(NewFixedGenerator("run-7")))
	res, err := r.Run(sc)
	require.NoError(t, err)
	assert.Equal(t, "run-7", res.Snapshot.RunToken)
}

func TestRunner_ScenarioTokenWins(t *testing.T) {
	sc, err := Parse([]byte("name: tokened\nrun_token: pinned\nsteps: []\n"))
	require.NoError(t, err)

	r := NewRunner(WithTokenGenerator(NewFixedGenerator("unused")))
	res, err := r.Run(sc)
	require.NoError(t, err)
	assert.Equal(t, "pinned", res.Snapshot.RunToken)
}
