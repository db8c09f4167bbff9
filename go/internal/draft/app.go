package draft

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcd-sim/franchise/go/internal/events"
	"github.com/mcd-sim/franchise/go/internal/models"
	"github.com/mcd-sim/franchise/go/internal/randutil"
)

// TeamRepository defines what the app layer needs from the teams store.
type TeamRepository interface {
	GetSeasonTeams(ctx context.Context, season int) ([]models.Team, error)
}

// PickRepository defines what the app layer needs from the draft pick and
// draft order stores.
type PickRepository interface {
	GetDraftPicksBySeason(ctx context.Context, season int) ([]models.DraftPick, error)
	CreateDraftPicksBatch(ctx context.Context, picks []models.DraftPick) error
	// ReplaceDraftOrder deletes every DraftPick for the season and writes
	// the new order as one atomic group. This is the point at which picks
	// stop being tradeable.
	ReplaceDraftOrder(ctx context.Context, season int, entries []models.DraftOrderEntry) error
	GetDraftOrder(ctx context.Context) ([]models.DraftOrderEntry, error)
	SetDraftOrder(ctx context.Context, entries []models.DraftOrderEntry) error
}

// PlayerRepository defines what the app layer needs from the player store.
type PlayerRepository interface {
	// ListUndrafted returns the draft pool sorted descending by value.
	ListUndrafted(ctx context.Context) ([]models.Player, error)
	ListByTID(ctx context.Context, tid int) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, p models.Player) error
}

// LeagueRepository defines what the app layer needs to advance the phase.
type LeagueRepository interface {
	UpdatePhase(ctx context.Context, phase, nextPhase models.Phase) error
}

// EventLogger appends news-feed entries. Failures are best effort and
// never abort the state transition that produced the event.
type EventLogger interface {
	LogEvent(ctx context.Context, ev events.LogEvent) error
}

// App handles draft-order resolution and draft progression.
type App struct {
	teamRepo   TeamRepository
	pickRepo   PickRepository
	playerRepo PlayerRepository
	leagueRepo LeagueRepository
	logger     EventLogger
	clock      clockwork.Clock
	src        randutil.Source
}

// NewApp creates a new draft App.
func NewApp(teamRepo TeamRepository, pickRepo PickRepository, playerRepo PlayerRepository, leagueRepo LeagueRepository, logger EventLogger, clock clockwork.Clock, src randutil.Source) *App {
	return &App{
		teamRepo:   teamRepo,
		pickRepo:   pickRepo,
		playerRepo: playerRepo,
		leagueRepo: leagueRepo,
		logger:     logger,
		clock:      clock,
		src:        src,
	}
}

// logEvent writes a news-feed entry, logging and swallowing any failure.
func (a *App) logEvent(ctx context.Context, ev events.LogEvent) {
	if a.logger == nil {
		return
	}
	if err := a.logger.LogEvent(ctx, ev); err != nil {
		log.Error().Err(err).Str("event_type", string(ev.Type)).Msg("failed to log draft event")
	}
}
