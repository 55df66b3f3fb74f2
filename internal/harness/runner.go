package harness

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/jaredlewiswechs/HumanLogica/internal/kernel"
	"github.com/jaredlewiswechs/HumanLogica/internal/ledger"
)

// Runner executes scenarios against fresh kernels.
//
// Every Run builds its own kernel, so executions are independent and a
// scenario always observes the boot state (root speaker plus the boot
// ledger entry) before its first step.
type Runner struct {
	tokens RunTokenGenerator
	clock  func() ledger.Clock
	logger *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithTokenGenerator sets the run token source. Defaults to UUIDv7Generator.
func WithTokenGenerator(g RunTokenGenerator) RunnerOption {
	return func(r *Runner) { r.tokens = g }
}

// WithClockFactory sets the clock constructor used for each run's kernel.
// The factory is called once per Run so repeated runs start from the same
// logical time.
func WithClockFactory(f func() ledger.Clock) RunnerOption {
	return func(r *Runner) { r.clock = f }
}

// WithLogger sets the logger handed to each kernel. Defaults to a
// discard logger so scenario runs stay quiet unless asked otherwise.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// NewRunner creates a scenario runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		tokens: UUIDv7Generator{},
		clock:  func() ledger.Clock { return kernel.NewCounterClock() },
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result holds everything a Run produced: the trace snapshot, any check
// failures, and the final kernel for callers that want to archive or
// render it.
type Result struct {
	Snapshot TraceSnapshot
	Failures []string
	Kernel   *kernel.Kernel
}

// Ok reports whether every check passed.
func (res *Result) Ok() bool { return len(res.Failures) == 0 }

// Run executes the scenario against a fresh kernel.
//
// Steps never abort the run: an operation that the kernel rejects is
// recorded in the trace as "rejected" and execution continues, because
// rejection is often exactly what a scenario demonstrates. Run returns
// an error only for malformed scenarios (an op name the schema should
// have caught).
func (r *Runner) Run(sc *Scenario) (*Result, error) {
	k := kernel.New(kernel.WithClock(r.clock()), kernel.WithLogger(r.logger))

	token := sc.RunToken
	if token == "" {
		token = r.tokens.Generate()
	}

	snap := TraceSnapshot{
		ScenarioName: sc.Name,
		RunToken:     token,
	}

	for i, step := range sc.Steps {
		result, err := r.execute(k, step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		snap.Events = append(snap.Events, TraceEvent{
			Step:   i + 1,
			Op:     step.Op,
			Result: result,
			Ledger: k.LedgerCount(),
		})
	}

	snap.LedgerCount = k.LedgerCount()
	snap.ChainValid = k.LedgerVerify()

	res := &Result{Snapshot: snap, Kernel: k}
	for i, check := range sc.Checks {
		if err := evalCheck(k, check); err != nil {
			res.Failures = append(res.Failures, fmt.Sprintf("check %d (%s): %v", i+1, check.Type, err))
		}
	}
	return res, nil
}

// execute dispatches one step and renders its outcome as a trace result.
func (r *Runner) execute(k *kernel.Kernel, step Step) (string, error) {
	switch step.Op {
	case "create_speaker":
		id := k.CreateSpeaker(step.Caller, step.Name)
		return fmt.Sprintf("id=%d", id), nil
	case "write":
		return okOrRejected(k.Write(step.Caller, step.Name, step.Number)), nil
	case "write_text":
		return okOrRejected(k.WriteText(step.Caller, step.Name, step.Text)), nil
	case "read_number":
		v := k.ReadNumber(step.Caller, step.Owner, step.Name)
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case "read_text":
		return k.ReadText(step.Caller, step.Owner, step.Name), nil
	case "seal":
		return okOrRejected(k.Seal(step.Caller, step.Name)), nil
	case "request":
		id := k.Request(step.Caller, step.Target, step.Action)
		return fmt.Sprintf("id=%d", id), nil
	case "respond":
		return okOrRejected(k.Respond(step.Caller, step.RequestID, step.Accept)), nil
	case "inspect_speaker":
		_, err := k.InspectSpeaker(step.Caller, step.Target)
		return okOrRejected(err == nil), nil
	case "inspect_variable":
		_, err := k.InspectVariable(step.Caller, step.Owner, step.Name)
		return okOrRejected(err == nil), nil
	default:
		return "", fmt.Errorf("unknown op %q", step.Op)
	}
}

func okOrRejected(ok bool) string {
	if ok {
		return "ok"
	}
	return "rejected"
}
