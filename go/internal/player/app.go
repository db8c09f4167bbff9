package player

import (
	"context"
	"fmt"

	"github.com/mcd-sim/franchise/go/internal/models"
)

// PlayerRepository defines what the app layer needs from the repository.
type PlayerRepository interface {
	ListUndrafted(ctx context.Context) ([]models.Player, error)
	ListByTID(ctx context.Context, tid int) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, p models.Player) error
}

// App handles player pool operations for the draft.
type App struct {
	repo PlayerRepository
}

func NewApp(repo PlayerRepository) *App {
	return &App{repo: repo}
}

func (a *App) ListUndrafted(ctx context.Context) ([]models.Player, error) {
	players, err := a.repo.ListUndrafted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list undrafted players: %w", err)
	}
	return players, nil
}

func (a *App) ListByTID(ctx context.Context, tid int) ([]models.Player, error) {
	return a.repo.ListByTID(ctx, tid)
}

func (a *App) UpdatePlayer(ctx context.Context, p models.Player) error {
	return a.repo.UpdatePlayer(ctx, p)
}
