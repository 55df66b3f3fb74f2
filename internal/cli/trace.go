package cli

import (
	"github.com/spf13/cobra"

	"github.com/jaredlewiswechs/HumanLogica/internal/archive"
	"github.com/jaredlewiswechs/HumanLogica/internal/inspect"
	"github.com/jaredlewiswechs/HumanLogica/internal/ledger"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database  string
	SpeakerID int
	Operation string
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Show the ledger of an archived run",
		Long: `Print the ledger entries of an archived run in order, optionally
filtered by speaker or operation.

Example:
  maryctl trace --db classroom.db
  maryctl trace --db classroom.db --speaker 2 --op read`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite archive (defaults to config)")
	cmd.Flags().IntVar(&opts.SpeakerID, "speaker", -1, "only entries by this speaker id")
	cmd.Flags().StringVar(&opts.Operation, "op", "", "only entries with this operation")

	return cmd
}

func runTrace(opts *TraceOptions, cmd *cobra.Command) error {
	formatter := formatterFor(opts.RootOptions, cmd)

	dbPath := opts.Database
	if dbPath == "" {
		dbPath = opts.Config.Database
	}

	st, err := archive.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open archive", err)
	}
	defer st.Close()

	entries, err := st.ReadEntries(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read archive", err)
	}
	formatter.VerboseLog("archive holds %d entries", len(entries))

	filtered := make([]ledger.Entry, 0, len(entries))
	for _, e := range entries {
		if opts.SpeakerID >= 0 && e.SpeakerID != opts.SpeakerID {
			continue
		}
		if opts.Operation != "" && e.Operation != opts.Operation {
			continue
		}
		filtered = append(filtered, e)
	}

	if opts.Format == "json" {
		return formatter.Success(filtered)
	}
	return formatter.Success(inspect.LedgerText(filtered))
}
