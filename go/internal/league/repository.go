package league

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/mcd-sim/franchise/go/internal/models"
)

// Repository stores the league-global parameters as a single Postgres row.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetContext loads the league parameter snapshot.
func (r *Repository) GetContext(ctx context.Context) (models.LeagueContext, error) {
	var lg models.LeagueContext
	var userTIDs pq.Int64Array
	err := r.db.QueryRowContext(ctx,
		`SELECT num_teams, season, phase, next_phase, user_tids,
		        auto_play_seasons, min_contract, max_contract
		 FROM league`).
		Scan(&lg.NumTeams, &lg.Season, &lg.Phase, &lg.NextPhase, &userTIDs,
			&lg.AutoPlaySeasons, &lg.MinContract, &lg.MaxContract)
	if err != nil {
		return models.LeagueContext{}, fmt.Errorf("failed to load league context: %w", err)
	}
	lg.UserTIDs = make([]int, len(userTIDs))
	for i, t := range userTIDs {
		lg.UserTIDs[i] = int(t)
	}
	return lg, nil
}

// UpdatePhase advances the league phase.
func (r *Repository) UpdatePhase(ctx context.Context, phase, nextPhase models.Phase) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE league SET phase = $1, next_phase = $2`, phase, nextPhase)
	if err != nil {
		return fmt.Errorf("failed to update league phase: %w", err)
	}
	return nil
}
