// Package inspect renders human-readable views of kernel snapshot data.
//
// The kernel exposes data, not formatted text; everything here is a pure
// formatting collaborator on top of the snapshot and query accessors.
// Rendering never mutates kernel state and never touches the ledger.
package inspect

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jaredlewiswechs/HumanLogica/internal/kernel"
	"github.com/jaredlewiswechs/HumanLogica/internal/ledger"
	"github.com/jaredlewiswechs/HumanLogica/internal/value"
)

// SpeakerText renders a speaker inspection block.
func SpeakerText(snap kernel.SpeakerSnapshot) string {
	var b strings.Builder
	s := snap.Speaker
	fmt.Fprintf(&b, "--- inspect %s ---\n", s.Name)
	fmt.Fprintf(&b, "speaker: %s (#%d)\n", s.Name, s.ID)
	fmt.Fprintf(&b, "status:  %s\n", s.Status)
	fmt.Fprintf(&b, "vars:    [%s]\n", quoteJoin(snap.Variables))
	fmt.Fprintf(&b, "pending: %d\n", snap.PendingRequests)
	b.WriteString("---\n")
	return b.String()
}

// VariableText renders a variable's current value and write history.
func VariableText(h kernel.VariableHistory) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- history %s.%s ---\n", h.OwnerName, h.Name)
	fmt.Fprintf(&b, "current: %s\n", currentValue(h))
	for _, e := range h.Writes {
		fmt.Fprintf(&b, "  #%d: %s\n", e.EntryID, e.Action)
	}
	b.WriteString("---\n")
	return b.String()
}

// LedgerText renders entries one per line, in chain order.
func LedgerText(entries []ledger.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "#%d [%.3f] speaker=%d %s %s %s\n",
			e.EntryID, e.Timestamp, e.SpeakerID, e.Operation, e.Action, e.EntryHash)
	}
	return b.String()
}

// Summary is a whole-system snapshot for status views.
type Summary struct {
	Speakers        int  `json:"speakers"`
	LedgerEntries   int  `json:"ledger_entries"`
	LedgerIntegrity bool `json:"ledger_integrity"`
}

// Summarize builds a system summary from the kernel's query accessors.
func Summarize(k *kernel.Kernel) Summary {
	return Summary{
		Speakers:        k.SpeakerCount(),
		LedgerEntries:   k.LedgerCount(),
		LedgerIntegrity: k.LedgerVerify(),
	}
}

// SummaryText renders a one-line system summary.
func SummaryText(s Summary) string {
	integrity := "VALID"
	if !s.LedgerIntegrity {
		integrity = "BROKEN"
	}
	return fmt.Sprintf("speakers=%d ledger=%d integrity=%s\n",
		s.Speakers, s.LedgerEntries, integrity)
}

// JSON renders any snapshot value as indented JSON.
func JSON(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	return string(out) + "\n", nil
}

func currentValue(h kernel.VariableHistory) string {
	switch h.Kind {
	case value.KindNumber:
		return strconv.FormatFloat(h.Number, 'g', -1, 64)
	case value.KindText:
		return h.Text
	default:
		return "null"
	}
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}
	return strings.Join(quoted, ", ")
}
