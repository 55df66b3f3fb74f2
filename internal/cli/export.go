package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaredlewiswechs/HumanLogica/internal/archive"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RunOptions
	Database string
}

// ExportResult summarizes an archived run.
type ExportResult struct {
	Scenario string `json:"scenario"`
	RunToken string `json:"run_token"`
	Database string `json:"database"`
	Entries  int    `json:"entries"`
	Speakers int    `json:"speakers"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RunOptions: &RunOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "export <scenario.yaml>",
		Short: "Run a scenario and archive its ledger",
		Long: `Run a scenario and archive the resulting ledger and speaker table to a
SQLite database. The archive holds exactly one run; exporting again
replaces it.

Example:
  maryctl export scenarios/classroom.yaml --db classroom.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite archive (defaults to config)")

	return cmd
}

func runExport(opts *ExportOptions, path string, cmd *cobra.Command) error {
	formatter := formatterFor(opts.RootOptions, cmd)

	res, err := executeScenario(opts.RunOptions, path, formatter)
	if err != nil {
		return err
	}
	if !res.Ok() {
		_ = formatter.Error(ErrCodeChecks, "scenario checks failed, not archiving", res.Failures)
		return NewExitError(ExitFailure, "scenario checks failed")
	}

	dbPath := opts.Database
	if dbPath == "" {
		dbPath = opts.Config.Database
	}

	st, err := archive.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open archive", err)
	}
	defer st.Close()

	k := res.Kernel
	if err := st.WriteSnapshot(cmd.Context(), k.Speakers(), k.LedgerEntries()); err != nil {
		return WrapExitError(ExitCommandError, "failed to archive run", err)
	}

	out := ExportResult{
		Scenario: res.Snapshot.ScenarioName,
		RunToken: res.Snapshot.RunToken,
		Database: dbPath,
		Entries:  res.Snapshot.LedgerCount,
		Speakers: len(k.Speakers()),
	}
	if opts.Format == "json" {
		return formatter.Success(out)
	}
	return formatter.Success(fmt.Sprintf("archived %s (run %s): %d entries, %d speakers -> %s",
		out.Scenario, out.RunToken, out.Entries, out.Speakers, out.Database))
}
