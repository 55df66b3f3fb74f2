package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `
name: cli-smoke
run_token: cli-smoke-token
steps:
  - op: create_speaker
    caller: 0
    name: Alice
  - op: write
    caller: 1
    name: x
    number: 7
checks:
  - type: ledger_count
    count: 3
  - type: chain_valid
`

const failingScenario = `
name: cli-fails
run_token: cli-fails-token
steps:
  - op: create_speaker
    caller: 0
    name: Alice
checks:
  - type: ledger_count
    count: 42
`

// writeScenario drops scenario YAML into a temp dir and returns its path.
func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRun_TextOutput(t *testing.T) {
	out, err := execute(t, "run", writeScenario(t, passingScenario))
	require.NoError(t, err)
	assert.Contains(t, out, "Scenario: cli-smoke (run cli-smoke-token)")
	assert.Contains(t, out, "create_speaker")
	assert.Contains(t, out, "Chain valid:    true")
	assert.Contains(t, out, "all passed")
}

func TestRun_JSONOutput(t *testing.T) {
	out, err := execute(t, "run", writeScenario(t, passingScenario), "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"status":"ok"`)
	assert.Contains(t, out, `"scenario_name":"cli-smoke"`)
	assert.Contains(t, out, `"run_token":"cli-smoke-token"`)
}

func TestRun_FailedChecksExitCode(t *testing.T) {
	out, err := execute(t, "run", writeScenario(t, failingScenario))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "FAIL")
}

func TestRun_MissingScenarioIsCommandError(t *testing.T) {
	_, err := execute(t, "run", "does/not/exist.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRun_MalformedScenarioIsCommandError(t *testing.T) {
	path := writeScenario(t, "name: broken\nsteps:\n  - op: teleport\n")
	_, err := execute(t, "run", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
