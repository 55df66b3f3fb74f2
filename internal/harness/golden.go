package harness

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TraceSnapshot captures a full scenario execution for golden comparison.
//
// The snapshot deliberately contains no entry hashes: it records results,
// running ledger counts, and whether the final chain verifies. Hashes are
// covered by the hashchain and ledger tests; keeping them out of golden
// files means a snapshot stays readable and a hash-input change shows up
// as a chain_valid flip rather than a wall of hex churn.
type TraceSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	RunToken     string       `json:"run_token"`
	Events       []TraceEvent `json:"events"`
	LedgerCount  int          `json:"ledger_count"`
	ChainValid   bool         `json:"chain_valid"`
}

// TraceEvent records one executed step.
type TraceEvent struct {
	// Step is the 1-based step index.
	Step int `json:"step"`

	// Op is the operation name from the scenario.
	Op string `json:"op"`

	// Result renders the outcome: "ok"/"rejected" for boolean
	// operations, "id=N" for create_speaker and request, and the value
	// read for reads.
	Result string `json:"result"`

	// Ledger is the ledger entry count after this step.
	Ledger int `json:"ledger"`
}

// Marshal serializes the snapshot as indented JSON with a trailing
// newline, the exact byte form stored in golden files.
func (s *TraceSnapshot) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// RunWithGolden executes a scenario and compares the trace snapshot
// against a golden file keyed on the scenario name.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, r *Runner, sc *Scenario) *Result {
	t.Helper()

	res, err := r.Run(sc)
	if err != nil {
		t.Fatalf("run scenario %s: %v", sc.Name, err)
	}
	for _, f := range res.Failures {
		t.Errorf("scenario %s: %s", sc.Name, f)
	}

	data, err := res.Snapshot.Marshal()
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, sc.Name, data)
	return res
}
