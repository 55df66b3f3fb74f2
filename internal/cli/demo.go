package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaredlewiswechs/HumanLogica/internal/inspect"
	"github.com/jaredlewiswechs/HumanLogica/internal/kernel"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in classroom session",
		Long: `Run a scripted classroom session on a fresh kernel and print the
inspection views as it goes: a teacher and a student are created, a
grade is posted and sealed, the student reads it and asks for a review,
and the teacher refuses. The final ledger always verifies.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootOpts, cmd)
		},
	}
	return cmd
}

func runDemo(opts *RootOptions, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	k := kernel.New()

	teacher := k.CreateSpeaker(0, "Teacher")
	student := k.CreateSpeaker(0, "Student")
	fmt.Fprintf(out, "created Teacher (id=%d) and Student (id=%d)\n\n", teacher, student)

	k.Write(teacher, "grade", 87)
	k.WriteText(student, "submission", "def calc(): return 2+2")

	grade := k.ReadNumber(student, teacher, "grade")
	fmt.Fprintf(out, "Student reads Teacher's grade: %g\n", grade)

	k.Seal(teacher, "grade")
	if !k.Write(teacher, "grade", 95) {
		fmt.Fprintln(out, "grade is sealed; even Teacher cannot change it now")
	}

	req := k.Request(student, teacher, "regrade_please")
	k.Respond(teacher, req, false)
	fmt.Fprintf(out, "Student's regrade request #%d was refused\n\n", req)

	snap, err := k.InspectSpeaker(0, teacher)
	if err != nil {
		return WrapExitError(ExitCommandError, "inspect failed", err)
	}
	fmt.Fprintln(out, inspect.SpeakerText(snap))

	hist, err := k.InspectVariable(0, teacher, "grade")
	if err != nil {
		return WrapExitError(ExitCommandError, "inspect failed", err)
	}
	fmt.Fprintln(out, inspect.VariableText(hist))

	fmt.Fprintln(out, inspect.SummaryText(inspect.Summarize(k)))

	if !k.LedgerVerify() {
		return NewExitError(ExitFailure, "demo ledger failed verification")
	}
	fmt.Fprintf(out, "ledger: %d entries, chain verifies, last hash %s\n",
		k.LedgerCount(), k.LastHash())
	return nil
}
