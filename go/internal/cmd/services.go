package main

import (
	"database/sql"

	"github.com/jonboulle/clockwork"

	"github.com/mcd-sim/franchise/go/internal/draft"
	draftrepo "github.com/mcd-sim/franchise/go/internal/draft/repository"
	"github.com/mcd-sim/franchise/go/internal/gateway"
	"github.com/mcd-sim/franchise/go/internal/league"
	"github.com/mcd-sim/franchise/go/internal/outbox"
	"github.com/mcd-sim/franchise/go/internal/player"
	"github.com/mcd-sim/franchise/go/internal/randutil"
	"github.com/mcd-sim/franchise/go/internal/schedule"
	"github.com/mcd-sim/franchise/go/internal/teams"
)

// Services bundles the wired app layers.
type Services struct {
	League   *league.App
	Draft    *draft.App
	Schedule *schedule.App
	Outbox   *outbox.App
	Gateway  *gateway.ConnectionManager
}

func setupServices(database *sql.DB) *Services {
	// Wire up the dependency injection chain:
	// database -> repository -> app.
	clock := clockwork.NewRealClock()
	src := randutil.NewFromClock()

	outboxRepo := outbox.NewRepository(database)
	outboxApp := outbox.NewApp(outboxRepo)

	manager := gateway.NewConnectionManager(gateway.DefaultConnectionConfig())

	teamsRepo := teams.NewRepository(database)
	teamsApp := teams.NewApp(teamsRepo)

	playerRepo := player.NewRepository(database)
	playerApp := player.NewApp(playerRepo)

	leagueRepo := league.NewRepository(database)
	leagueApp := league.NewApp(leagueRepo)

	pickRepo := draftrepo.NewRepository(database)
	draftApp := draft.NewApp(teamsApp, pickRepo, playerApp, leagueApp, outboxApp, clock, src)

	scheduleRepo := schedule.NewRepository(database)
	scheduleApp := schedule.NewApp(scheduleRepo, teamsApp, manager, outboxApp)

	return &Services{
		League:   leagueApp,
		Draft:    draftApp,
		Schedule: scheduleApp,
		Outbox:   outboxApp,
		Gateway:  manager,
	}
}
