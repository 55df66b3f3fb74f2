package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jaredlewiswechs/HumanLogica/internal/harness"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions

	// Tokens allows overriding the run token generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	Tokens harness.RunTokenGenerator
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scenario against a fresh kernel",
		Long: `Run a scenario file against a fresh kernel and print the trace.

Every run boots its own kernel, so the trace depends only on the
scenario. Exit code 1 means the scenario ran but one or more of its
checks failed.

Example:
  maryctl run scenarios/classroom.yaml
  maryctl run scenarios/classroom.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(opts, args[0], cmd)
		},
	}

	return cmd
}

func runScenario(opts *RunOptions, path string, cmd *cobra.Command) error {
	formatter := formatterFor(opts.RootOptions, cmd)

	res, err := executeScenario(opts, path, formatter)
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		if !res.Ok() {
			_ = formatter.Error(ErrCodeChecks, "scenario checks failed", res.Failures)
			return NewExitError(ExitFailure, "scenario checks failed")
		}
		return formatter.Success(res.Snapshot)
	}

	if err := formatter.Success(renderTrace(res)); err != nil {
		return err
	}
	if !res.Ok() {
		return NewExitError(ExitFailure, "scenario checks failed")
	}
	return nil
}

// executeScenario loads and runs a scenario file. Shared with export.
func executeScenario(opts *RunOptions, path string, formatter *OutputFormatter) (*harness.Result, error) {
	sc, err := harness.Load(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load scenario", err)
	}
	formatter.VerboseLog("loaded scenario %s (%d steps, %d checks)", sc.Name, len(sc.Steps), len(sc.Checks))

	runnerOpts := []harness.RunnerOption{}
	if opts.Tokens != nil {
		runnerOpts = append(runnerOpts, harness.WithTokenGenerator(opts.Tokens))
	}

	res, err := harness.NewRunner(runnerOpts...).Run(sc)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to run scenario", err)
	}
	return res, nil
}

// renderTrace formats a run result for text output.
func renderTrace(res *harness.Result) string {
	var b strings.Builder
	s := res.Snapshot

	fmt.Fprintf(&b, "Scenario: %s (run %s)\n", s.ScenarioName, s.RunToken)
	for _, ev := range s.Events {
		fmt.Fprintf(&b, "  [%d] %-16s -> %-10s (ledger %d)\n", ev.Step, ev.Op, ev.Result, ev.Ledger)
	}
	fmt.Fprintf(&b, "Ledger entries: %d\n", s.LedgerCount)
	fmt.Fprintf(&b, "Chain valid:    %t\n", s.ChainValid)

	if res.Ok() {
		fmt.Fprintf(&b, "Checks:         all passed")
	} else {
		fmt.Fprintf(&b, "Checks:         %d failed\n", len(res.Failures))
		for _, f := range res.Failures {
			fmt.Fprintf(&b, "  FAIL %s\n", f)
		}
		return strings.TrimRight(b.String(), "\n")
	}
	return b.String()
}
