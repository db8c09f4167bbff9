package teams

import (
	"context"
	"fmt"

	"github.com/mcd-sim/franchise/go/internal/models"
)

// TeamsRepository defines what the app layer needs from the repository.
type TeamsRepository interface {
	GetSeasonTeams(ctx context.Context, season int) ([]models.Team, error)
	GetTeamOvr(ctx context.Context, tid int) (int, error)
}

// App handles team lookups for the simulation core.
type App struct {
	repo TeamsRepository
}

func NewApp(repo TeamsRepository) *App {
	return &App{repo: repo}
}

// GetSeasonTeams returns the immutable team snapshots for one season.
func (a *App) GetSeasonTeams(ctx context.Context, season int) ([]models.Team, error) {
	teams, err := a.repo.GetSeasonTeams(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("failed to get season teams: %w", err)
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("no team snapshots for season %d", season)
	}
	return teams, nil
}

// GetTeamOvr returns a team's current overall rating.
func (a *App) GetTeamOvr(ctx context.Context, tid int) (int, error) {
	return a.repo.GetTeamOvr(ctx, tid)
}
