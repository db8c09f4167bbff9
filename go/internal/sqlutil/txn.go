package sqlutil

import (
	"context"
	"database/sql"
)

// RunTx executes fn inside a transaction. If fn returns an error the
// transaction rolls back, else it commits. Multi-step sequences that must
// appear atomic to concurrent readers (consume picks, write order) run
// through here.
func RunTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
