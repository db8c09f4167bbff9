package teams

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mcd-sim/franchise/go/internal/models"
)

// Repository reads per-season team snapshots from Postgres.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetSeasonTeams(ctx context.Context, season int) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tid, cid, win_pct, playoff_rounds_won
		 FROM team_seasons
		 WHERE season = $1
		 ORDER BY tid`, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query season teams: %w", err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		var rounds sql.NullInt32
		if err := rows.Scan(&t.TID, &t.CID, &t.WinPct, &rounds); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		// NULL playoff_rounds_won means the team missed the playoffs.
		t.PlayoffRoundsWon = -1
		if rounds.Valid {
			t.PlayoffRoundsWon = int(rounds.Int32)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// GetTeamOvr returns the current overall rating for a team, used by the
// upcoming-games projection.
func (r *Repository) GetTeamOvr(ctx context.Context, tid int) (int, error) {
	var ovr int
	err := r.db.QueryRowContext(ctx,
		`SELECT ovr FROM team_ratings WHERE tid = $1`, tid).Scan(&ovr)
	if err != nil {
		return 0, fmt.Errorf("failed to get team ovr: %w", err)
	}
	return ovr, nil
}
