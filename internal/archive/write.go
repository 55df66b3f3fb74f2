package archive

import (
	"context"
	"fmt"

	"github.com/jaredlewiswechs/HumanLogica/internal/kernel"
	"github.com/jaredlewiswechs/HumanLogica/internal/ledger"
)

// WriteSnapshot archives a run's speakers and full ledger in one
// transaction. Re-archiving into the same database replaces prior rows:
// an archive holds exactly one run.
func (s *Store) WriteSnapshot(ctx context.Context, speakers []kernel.Speaker, entries []ledger.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM ledger_entries"); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM speakers"); err != nil {
		return fmt.Errorf("clear speakers: %w", err)
	}

	entryStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO ledger_entries
			(entry_id, speaker_id, operation, action, status, timestamp, prev_hash, entry_hash, break_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare entry insert: %w", err)
	}
	defer entryStmt.Close()

	for _, e := range entries {
		_, err := entryStmt.ExecContext(ctx,
			e.EntryID, e.SpeakerID, e.Operation, e.Action, e.Status,
			e.Timestamp, e.PrevHash, e.EntryHash, e.BreakReason)
		if err != nil {
			return fmt.Errorf("insert entry %d: %w", e.EntryID, err)
		}
	}

	speakerStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO speakers (id, name, created_at, status) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare speaker insert: %w", err)
	}
	defer speakerStmt.Close()

	for _, sp := range speakers {
		_, err := speakerStmt.ExecContext(ctx, sp.ID, sp.Name, sp.CreatedAt, sp.Status.String())
		if err != nil {
			return fmt.Errorf("insert speaker %d: %w", sp.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive: %w", err)
	}
	return nil
}
