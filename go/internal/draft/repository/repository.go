// Package repository implements the draft pick and draft order stores on
// Postgres.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mcd-sim/franchise/go/internal/models"
	"github.com/mcd-sim/franchise/go/internal/sqlutil"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetDraftPicksBySeason(ctx context.Context, season int) ([]models.DraftPick, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, season, round, tid, original_tid
		 FROM draft_picks
		 WHERE season = $1
		 ORDER BY round, original_tid`, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query draft picks: %w", err)
	}
	defer rows.Close()

	var picks []models.DraftPick
	for rows.Next() {
		var p models.DraftPick
		if err := rows.Scan(&p.ID, &p.Season, &p.Round, &p.TID, &p.OriginalTID); err != nil {
			return nil, fmt.Errorf("failed to scan draft pick: %w", err)
		}
		picks = append(picks, p)
	}
	return picks, rows.Err()
}

func (r *Repository) CreateDraftPicksBatch(ctx context.Context, picks []models.DraftPick) error {
	if len(picks) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(picks))
	seasons := make([]int64, len(picks))
	rounds := make([]int64, len(picks))
	tids := make([]int64, len(picks))
	originalTIDs := make([]int64, len(picks))
	for i, p := range picks {
		ids[i] = p.ID
		seasons[i] = int64(p.Season)
		rounds[i] = int64(p.Round)
		tids[i] = int64(p.TID)
		originalTIDs[i] = int64(p.OriginalTID)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO draft_picks (id, season, round, tid, original_tid)
		 SELECT * FROM unnest($1::uuid[], $2::int[], $3::int[], $4::int[], $5::int[])`,
		pq.Array(ids), pq.Array(seasons), pq.Array(rounds), pq.Array(tids), pq.Array(originalTIDs))
	if err != nil {
		return fmt.Errorf("failed to create draft picks batch: %w", err)
	}
	return nil
}

// ReplaceDraftOrder deletes the season's DraftPicks and overwrites the
// order in one transaction, so no reader ever observes only half of the
// swap.
func (r *Repository) ReplaceDraftOrder(ctx context.Context, season int, entries []models.DraftOrderEntry) error {
	return sqlutil.RunTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM draft_picks WHERE season = $1`, season); err != nil {
			return fmt.Errorf("failed to consume draft picks: %w", err)
		}
		return writeOrder(ctx, tx, entries)
	})
}

func (r *Repository) GetDraftOrder(ctx context.Context) ([]models.DraftOrderEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT round, pick, tid, original_tid FROM draft_order ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("failed to query draft order: %w", err)
	}
	defer rows.Close()

	var entries []models.DraftOrderEntry
	for rows.Next() {
		var e models.DraftOrderEntry
		if err := rows.Scan(&e.Round, &e.Pick, &e.TID, &e.OriginalTID); err != nil {
			return nil, fmt.Errorf("failed to scan draft order entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *Repository) SetDraftOrder(ctx context.Context, entries []models.DraftOrderEntry) error {
	return sqlutil.RunTx(ctx, r.db, func(tx *sql.Tx) error {
		return writeOrder(ctx, tx, entries)
	})
}

func writeOrder(ctx context.Context, tx *sql.Tx, entries []models.DraftOrderEntry) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM draft_order`); err != nil {
		return fmt.Errorf("failed to clear draft order: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	positions := make([]int64, len(entries))
	rounds := make([]int64, len(entries))
	picks := make([]int64, len(entries))
	tids := make([]int64, len(entries))
	originalTIDs := make([]int64, len(entries))
	for i, e := range entries {
		positions[i] = int64(i)
		rounds[i] = int64(e.Round)
		picks[i] = int64(e.Pick)
		tids[i] = int64(e.TID)
		originalTIDs[i] = int64(e.OriginalTID)
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO draft_order (pos, round, pick, tid, original_tid)
		 SELECT * FROM unnest($1::int[], $2::int[], $3::int[], $4::int[], $5::int[])`,
		pq.Array(positions), pq.Array(rounds), pq.Array(picks), pq.Array(tids), pq.Array(originalTIDs))
	if err != nil {
		return fmt.Errorf("failed to write draft order: %w", err)
	}
	return nil
}
