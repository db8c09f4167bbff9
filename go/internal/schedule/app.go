package schedule

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mcd-sim/franchise/go/internal/events"
	"github.com/mcd-sim/franchise/go/internal/models"
)

// ScheduleRepository defines what the app layer needs from the store.
type ScheduleRepository interface {
	// ReplaceSchedule overwrites the whole schedule atomically.
	ReplaceSchedule(ctx context.Context, entries []models.ScheduleEntry) error
	GetSchedule(ctx context.Context) ([]models.ScheduleEntry, error)
	GetUpcomingByTID(ctx context.Context, tid, limit int) ([]models.ScheduleEntry, error)
}

// TeamRatings supplies current overall ratings for the UI projection.
type TeamRatings interface {
	GetTeamOvr(ctx context.Context, tid int) (int, error)
}

// Notifier pushes derived view data to the presentation layer. Fire and
// forget: the core never reads UI state back.
type Notifier interface {
	Notify(channel string, payload interface{})
}

// EventLogger appends news-feed entries. Failures are best effort and
// never abort the schedule write that produced the event.
type EventLogger interface {
	LogEvent(ctx context.Context, ev events.LogEvent) error
}

// upcomingGamesShown caps the upcoming-games view pushed to the UI.
const upcomingGamesShown = 3

// App assigns days to the season schedule and maintains the UI's
// upcoming-games projection.
type App struct {
	repo     ScheduleRepository
	ratings  TeamRatings
	notifier Notifier
	logger   EventLogger
}

func NewApp(repo ScheduleRepository, ratings TeamRatings, notifier Notifier, logger EventLogger) *App {
	return &App{repo: repo, ratings: ratings, notifier: notifier, logger: logger}
}

// SetSchedule partitions the season's matchups into days, overwrites the
// schedule store, and refreshes the user team's upcoming-games view.
func (a *App) SetSchedule(ctx context.Context, lg models.LeagueContext, tids [][2]int) error {
	entries := AssignDays(tids)
	if err := a.repo.ReplaceSchedule(ctx, entries); err != nil {
		return fmt.Errorf("failed to replace schedule: %w", err)
	}

	log.Info().
		Int("games", len(entries)).
		Int("days", lastDay(entries)).
		Int("season", lg.Season).
		Msg("schedule set")

	if a.logger != nil {
		ev := events.LogEvent{
			Type:   events.EventTypeScheduleSet,
			Text:   fmt.Sprintf("The season schedule is set: %d games over %d days.", len(entries), lastDay(entries)),
			Season: lg.Season,
		}
		if err := a.logger.LogEvent(ctx, ev); err != nil {
			log.Error().Err(err).Msg("failed to log schedule event")
		}
	}

	a.PushUpcomingGames(ctx, lg)
	return nil
}

// PushUpcomingGames derives the simplified upcoming-games view for the
// user's team and pushes it to the UI. Best effort: a failed lookup drops
// the push, never the schedule write that preceded it.
func (a *App) PushUpcomingGames(ctx context.Context, lg models.LeagueContext) {
	if a.notifier == nil || len(lg.UserTIDs) == 0 {
		return
	}
	userTID := lg.UserTIDs[0]

	upcoming, err := a.repo.GetUpcomingByTID(ctx, userTID, upcomingGamesShown)
	if err != nil {
		log.Error().Err(err).Int("tid", userTID).Msg("failed to load upcoming games")
		return
	}

	games := make([]events.UpcomingGame, 0, len(upcoming))
	for _, e := range upcoming {
		game := events.UpcomingGame{GID: e.GID.String()}
		for i, tid := range [2]int{e.HomeTID, e.AwayTID} {
			ovr := 0
			if tid >= 0 {
				if o, err := a.ratings.GetTeamOvr(ctx, tid); err == nil {
					ovr = o
				}
			}
			game.Teams[i] = events.UpcomingGameTeam{
				TID:      tid,
				Ovr:      ovr,
				Playoffs: lg.Phase == models.PhasePlayoffs,
			}
		}
		games = append(games, game)
	}

	a.notifier.Notify("upcomingGames", games)
}

func lastDay(entries []models.ScheduleEntry) int {
	if len(entries) == 0 {
		return 0
	}
	return entries[len(entries)-1].Day
}
