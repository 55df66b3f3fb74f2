package harness

import (
	"fmt"

	"github.com/jaredlewiswechs/HumanLogica/internal/kernel"
	"github.com/jaredlewiswechs/HumanLogica/internal/ledger"
)

// evalCheck evaluates one final-state assertion against the kernel.
// Every accessor used here is ledger-neutral, so a failing (or passing)
// check leaves the chain exactly as the steps built it.
func evalCheck(k *kernel.Kernel, c Check) error {
	switch c.Type {
	case "ledger_count":
		if got := k.LedgerCount(); got != c.Count {
			return fmt.Errorf("ledger has %d entries, want %d", got, c.Count)
		}
	case "chain_valid":
		if !k.LedgerVerify() {
			return fmt.Errorf("hash chain does not verify")
		}
	case "speaker_count":
		if got := k.SpeakerCount(); got != c.Count {
			return fmt.Errorf("kernel has %d speakers, want %d", got, c.Count)
		}
	case "speaker_name":
		if got := k.SpeakerName(c.Speaker); got != c.Name {
			return fmt.Errorf("speaker %d is named %q, want %q", c.Speaker, got, c.Name)
		}
	case "pending_count":
		if got := k.PendingCount(c.Speaker); got != c.Count {
			return fmt.Errorf("speaker %d has %d pending requests, want %d", c.Speaker, got, c.Count)
		}
	case "type_of":
		if got := k.TypeOf(c.Owner, c.Name).String(); got != c.Kind {
			return fmt.Errorf("%d.%s has kind %s, want %s", c.Owner, c.Name, got, c.Kind)
		}
	case "sealed":
		if !k.IsSealed(c.Speaker, c.Name) {
			return fmt.Errorf("%d.%s is not sealed", c.Speaker, c.Name)
		}
	case "ledger_contains":
		matches := k.LedgerSelect(func(e ledger.Entry) bool {
			if e.SpeakerID != c.Speaker {
				return false
			}
			if c.Operation != "" && e.Operation != c.Operation {
				return false
			}
			if c.Action != "" && e.Action != c.Action {
				return false
			}
			return true
		})
		switch {
		case c.Count == 0 && len(matches) == 0:
			return fmt.Errorf("no ledger entry matches speaker=%d operation=%q action=%q",
				c.Speaker, c.Operation, c.Action)
		case c.Count > 0 && len(matches) != c.Count:
			return fmt.Errorf("%d ledger entries match, want %d", len(matches), c.Count)
		}
	default:
		return fmt.Errorf("unknown check type %q", c.Type)
	}
	return nil
}
