package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mcd-sim/franchise/go/internal/models"
	"github.com/mcd-sim/franchise/go/internal/sqlutil"
)

// Repository stores the day-indexed schedule in Postgres.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ReplaceSchedule clears and rewrites the schedule in one transaction.
func (r *Repository) ReplaceSchedule(ctx context.Context, entries []models.ScheduleEntry) error {
	return sqlutil.RunTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM schedule`); err != nil {
			return fmt.Errorf("failed to clear schedule: %w", err)
		}
		if len(entries) == 0 {
			return nil
		}

		gids := make([]uuid.UUID, len(entries))
		days := make([]int64, len(entries))
		homeTIDs := make([]int64, len(entries))
		awayTIDs := make([]int64, len(entries))
		for i, e := range entries {
			gids[i] = e.GID
			days[i] = int64(e.Day)
			homeTIDs[i] = int64(e.HomeTID)
			awayTIDs[i] = int64(e.AwayTID)
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO schedule (gid, day, home_tid, away_tid)
			 SELECT * FROM unnest($1::uuid[], $2::int[], $3::int[], $4::int[])`,
			pq.Array(gids), pq.Array(days), pq.Array(homeTIDs), pq.Array(awayTIDs))
		if err != nil {
			return fmt.Errorf("failed to write schedule: %w", err)
		}
		return nil
	})
}

func (r *Repository) GetSchedule(ctx context.Context) ([]models.ScheduleEntry, error) {
	return r.queryEntries(ctx,
		`SELECT gid, day, home_tid, away_tid FROM schedule ORDER BY day, gid`)
}

// GetUpcomingByTID returns the next games involving tid, soonest first.
func (r *Repository) GetUpcomingByTID(ctx context.Context, tid, limit int) ([]models.ScheduleEntry, error) {
	return r.queryEntries(ctx,
		`SELECT gid, day, home_tid, away_tid
		 FROM schedule
		 WHERE home_tid = $1 OR away_tid = $1
		 ORDER BY day
		 LIMIT $2`, tid, limit)
}

func (r *Repository) queryEntries(ctx context.Context, query string, args ...interface{}) ([]models.ScheduleEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule: %w", err)
	}
	defer rows.Close()

	var entries []models.ScheduleEntry
	for rows.Next() {
		var e models.ScheduleEntry
		if err := rows.Scan(&e.GID, &e.Day, &e.HomeTID, &e.AwayTID); err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
