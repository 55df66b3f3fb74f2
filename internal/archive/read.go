package archive

import (
	"context"
	"fmt"

	"github.com/jaredlewiswechs/HumanLogica/internal/kernel"
	"github.com/jaredlewiswechs/HumanLogica/internal/ledger"
)

// ReadEntries returns the archived ledger in chain order.
func (s *Store) ReadEntries(ctx context.Context) ([]ledger.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT entry_id, speaker_id, operation, action, status, timestamp, prev_hash, entry_hash, break_reason
		FROM ledger_entries ORDER BY entry_id`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []ledger.Entry
	for rows.Next() {
		var e ledger.Entry
		err := rows.Scan(&e.EntryID, &e.SpeakerID, &e.Operation, &e.Action,
			&e.Status, &e.Timestamp, &e.PrevHash, &e.EntryHash, &e.BreakReason)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// ReadSpeakers returns the archived speaker records in id order.
func (s *Store) ReadSpeakers(ctx context.Context) ([]kernel.Speaker, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at, status FROM speakers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query speakers: %w", err)
	}
	defer rows.Close()

	var speakers []kernel.Speaker
	for rows.Next() {
		var sp kernel.Speaker
		var status string
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.CreatedAt, &status); err != nil {
			return nil, fmt.Errorf("scan speaker: %w", err)
		}
		if status == "suspended" {
			sp.Status = kernel.Suspended
		}
		speakers = append(speakers, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate speakers: %w", err)
	}
	return speakers, nil
}

// Verify re-runs chain verification over the archived entries. Timestamps
// round-trip through SQLite REAL columns exactly, so a clean archive of a
// valid ledger always verifies.
func (s *Store) Verify(ctx context.Context) (bool, error) {
	entries, err := s.ReadEntries(ctx)
	if err != nil {
		return false, err
	}
	return ledger.VerifyEntries(entries), nil
}
