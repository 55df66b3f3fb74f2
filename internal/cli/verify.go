package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaredlewiswechs/HumanLogica/internal/archive"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	Database string
}

// VerifyResult reports a chain verification.
type VerifyResult struct {
	Database string `json:"database"`
	Entries  int    `json:"entries"`
	Valid    bool   `json:"valid"`
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an archived ledger's hash chain",
		Long: `Recompute the hash chain of an archived run and report whether every
entry links to its predecessor. A tampered row, a reordered entry, or a
forged hash all fail verification.

Exit code 1 means the archive was readable but the chain is broken.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite archive (defaults to config)")

	return cmd
}

func runVerify(opts *VerifyOptions, cmd *cobra.Command) error {
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

	ctx := cmd.Context()
	valid, err := st.Verify(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to verify archive", err)
	}
	count, err := st.EntryCount(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to count entries", err)
	}

	out := VerifyResult{Database: dbPath, Entries: count, Valid: valid}
	if !valid {
		if opts.Format == "json" {
			_ = formatter.Error(ErrCodeChain, "hash chain verification failed", out)
		} else {
			_ = formatter.Success(fmt.Sprintf("BROKEN: chain of %d entries in %s does not verify", count, dbPath))
		}
		return NewExitError(ExitFailure, "hash chain verification failed")
	}

	if opts.Format == "json" {
		return formatter.Success(out)
	}
	return formatter.Success(fmt.Sprintf("ok: chain of %d entries in %s verifies", count, dbPath))
}
