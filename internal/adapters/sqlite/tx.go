package sqlite

import (
	"context"
	"database/sql"

	"smartvault/internal/ports"
)

// journalTx groups one append with its pruning
type journalTx struct {
	tx *sql.Tx
}

func (j *Journal) begin(ctx context.Context) (*journalTx, error) {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &journalTx{tx: tx}, nil
}

// insert adds one entry
func (t *journalTx) insert(e ports.ActivityEntry) error {
	ok := 0
	if e.OK {
		ok = 1
	}
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO activity (id, action, target, ok, message, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Action, e.Target, ok, e.Message, e.StartedAt.UnixMilli(), e.Duration.Milliseconds())
	return err
}

// prune drops everything older than the newest keep entries
func (t *journalTx) prune(keep int) error {
	_, err := t.tx.Exec(`
		DELETE FROM activity
		WHERE rowid NOT IN (
			SELECT rowid FROM activity ORDER BY started_at DESC, rowid DESC LIMIT ?
		)
	`, keep)
	return err
}

// Commit commits the transaction
func (t *journalTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *journalTx) Rollback() error {
	return t.tx.Rollback()
}
