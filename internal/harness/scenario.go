package harness

import (
	"fmt"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Scenario defines a deterministic kernel script: an ordered list of
// operations executed against a fresh kernel, plus checks on the final
// state.
//
// Scenarios reference speakers by id rather than name because ids are
// assigned deterministically: root is 0, and the first create_speaker
// step always yields 1.
type Scenario struct {
	// Name uniquely identifies this scenario. Golden files are keyed on it.
	Name string `yaml:"name"`

	// Description explains what this scenario demonstrates.
	Description string `yaml:"description,omitempty"`

	// Steps is the operation sequence, executed in order.
	Steps []Step `yaml:"steps"`

	// Checks validate the final kernel state. Checks only go through
	// accessors that never write ledger entries, so evaluating them
	// cannot perturb the chain. Value assertions belong in read steps,
	// whose results land in the trace.
	Checks []Check `yaml:"checks,omitempty"`

	// RunToken is an optional fixed run token for deterministic output.
	// If empty, the runner's token generator supplies one.
	RunToken string `yaml:"run_token,omitempty"`
}

// Step is a single kernel operation. Which fields apply depends on Op.
type Step struct {
	// Op names the operation: create_speaker, write, write_text,
	// read_number, read_text, seal, request, respond, inspect_speaker,
	// inspect_variable.
	Op string `yaml:"op"`

	// Caller is the acting speaker id.
	Caller int `yaml:"caller"`

	// Owner is the partition owner for reads and inspect_variable.
	Owner int `yaml:"owner,omitempty"`

	// Target is the to-speaker for request and inspect_speaker.
	Target int `yaml:"target,omitempty"`

	// RequestID selects the request for respond.
	RequestID int `yaml:"request,omitempty"`

	// Name is the new speaker name or the variable name, depending on Op.
	Name string `yaml:"name,omitempty"`

	// Number is the value for write.
	Number float64 `yaml:"number,omitempty"`

	// Text is the value for write_text.
	Text string `yaml:"text,omitempty"`

	// Action is the free-text request action.
	Action string `yaml:"action,omitempty"`

	// Accept is the respond verdict.
	Accept bool `yaml:"accept,omitempty"`
}

// Check is one final-state assertion.
// Supported types: ledger_count, chain_valid, speaker_count, speaker_name,
// pending_count, type_of, sealed, ledger_contains.
type Check struct {
	// Type selects the assertion.
	Type string `yaml:"type"`

	// Speaker selects the speaker for pending_count, speaker_name,
	// sealed, and ledger_contains.
	Speaker int `yaml:"speaker,omitempty"`

	// Owner selects the partition owner for type_of.
	Owner int `yaml:"owner,omitempty"`

	// Name is a variable name (type_of, sealed) or the expected
	// speaker name (speaker_name).
	Name string `yaml:"name,omitempty"`

	// Kind is the expected type tag for type_of: null, number, or text.
	Kind string `yaml:"kind,omitempty"`

	// Count is the expected value for ledger_count, speaker_count and
	// pending_count. For ledger_contains, zero means "at least one
	// match" and a positive value requires exactly that many matches.
	Count int `yaml:"count,omitempty"`

	// Operation and Action filter ledger entries for ledger_contains.
	Operation string `yaml:"operation,omitempty"`
	Action    string `yaml:"action,omitempty"`
}

// Load reads, validates, and normalizes a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse validates scenario bytes against the embedded CUE schema, decodes
// them, and NFC-normalizes every caller-provided string. Normalizing at
// this boundary means visually identical spellings in a scenario file
// always address the same variable.
func Parse(data []byte) (*Scenario, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	sc.normalize()
	return &sc, nil
}

func (sc *Scenario) normalize() {
	sc.Name = norm.NFC.String(sc.Name)
	for i := range sc.Steps {
		s := &sc.Steps[i]
		s.Name = norm.NFC.String(s.Name)
		s.Text = norm.NFC.String(s.Text)
		s.Action = norm.NFC.String(s.Action)
	}
	for i := range sc.Checks {
		c := &sc.Checks[i]
		c.Name = norm.NFC.String(c.Name)
		c.Action = norm.NFC.String(c.Action)
	}
}
