package league

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mcd-sim/franchise/go/internal/models"
)

// LeagueRepository defines what the app layer needs from the repository.
type LeagueRepository interface {
	GetContext(ctx context.Context) (models.LeagueContext, error)
	UpdatePhase(ctx context.Context, phase, nextPhase models.Phase) error
}

// App loads the immutable league context and applies phase transitions.
type App struct {
	repo LeagueRepository
}

func NewApp(repo LeagueRepository) *App {
	return &App{repo: repo}
}

// GetContext returns the league snapshot passed into every core call.
func (a *App) GetContext(ctx context.Context) (models.LeagueContext, error) {
	lg, err := a.repo.GetContext(ctx)
	if err != nil {
		return models.LeagueContext{}, err
	}
	if lg.NumTeams <= 0 {
		return models.LeagueContext{}, fmt.Errorf("league has no teams configured")
	}
	return lg, nil
}

// UpdatePhase applies a phase transition.
func (a *App) UpdatePhase(ctx context.Context, phase, nextPhase models.Phase) error {
	if err := a.repo.UpdatePhase(ctx, phase, nextPhase); err != nil {
		return err
	}
	log.Info().Str("phase", string(phase)).Str("next_phase", string(nextPhase)).Msg("league phase updated")
	return nil
}
