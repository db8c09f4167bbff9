package draft

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcd-sim/franchise/go/internal/models"
	"github.com/mcd-sim/franchise/go/internal/randutil"
)

func newTestApp(teamRepo *fakeTeamRepo, pickRepo *fakePickRepo, playerRepo *fakePlayerRepo, leagueRepo *fakeLeagueRepo, logger *fakeEventLogger, seed int64) *App {
	return NewApp(teamRepo, pickRepo, playerRepo, leagueRepo, logger, clockwork.NewFakeClock(), randutil.New(seed))
}

// eightTeams builds four lottery teams and four playoff teams.
func eightTeams() []models.Team {
	teams := make([]models.Team, 8)
	for i := range teams {
		rounds := -1
		if i >= 4 {
			rounds = i - 4
		}
		teams[i] = models.Team{
			TID:              i,
			CID:              i % 2,
			WinPct:           0.2 + 0.08*float64(i),
			PlayoffRoundsWon: rounds,
		}
	}
	return teams
}

func defaultPicks(season, numTeams int) []models.DraftPick {
	picks := make([]models.DraftPick, 0, numTeams*2)
	for round := 1; round <= 2; round++ {
		for tid := 0; tid < numTeams; tid++ {
			picks = append(picks, models.DraftPick{
				ID:          uuid.New(),
				Season:      season,
				Round:       round,
				TID:         tid,
				OriginalTID: tid,
			})
		}
	}
	return picks
}

func TestGenOrderCoversEveryTeamOnce(t *testing.T) {
	lg := models.LeagueContext{NumTeams: 8, Season: 2026}
	pickRepo := &fakePickRepo{picks: defaultPicks(lg.Season, lg.NumTeams)}
	logger := &fakeEventLogger{}
	app := newTestApp(&fakeTeamRepo{teams: eightTeams()}, pickRepo, newFakePlayerRepo(), &fakeLeagueRepo{}, logger, 7)

	entries, err := app.GenOrder(context.Background(), lg)
	require.NoError(t, err)
	require.Len(t, entries, 2*lg.NumTeams)

	for round := 1; round <= 2; round++ {
		seen := map[int]bool{}
		pick := 0
		for _, e := range entries {
			if e.Round != round {
				continue
			}
			pick++
			assert.Equal(t, pick, e.Pick, "picks are sequential within round %d", round)
			assert.False(t, seen[e.OriginalTID], "round %d repeats original team %d", round, e.OriginalTID)
			seen[e.OriginalTID] = true
		}
		assert.Len(t, seen, lg.NumTeams, "round %d must slot every team exactly once", round)
	}

	assert.Empty(t, pickRepo.picks, "resolving the order consumes the season's tradeable picks")
	assert.Equal(t, pickRepo.order, entries)

	// One movement and one chance event per lottery-eligible team.
	assert.Len(t, logger.logged, 8)
}

func TestGenOrderRegeneratesMissingPicks(t *testing.T) {
	lg := models.LeagueContext{NumTeams: 8, Season: 2026}
	pickRepo := &fakePickRepo{}
	app := newTestApp(&fakeTeamRepo{teams: eightTeams()}, pickRepo, newFakePlayerRepo(), &fakeLeagueRepo{}, &fakeEventLogger{}, 7)

	_, err := app.GenOrder(context.Background(), lg)
	require.NoError(t, err)

	assert.Len(t, pickRepo.created, 2*lg.NumTeams, "an empty pick store regenerates two picks per team")
}

func TestGenOrderHonorsTradedPicks(t *testing.T) {
	lg := models.LeagueContext{NumTeams: 8, Season: 2026}
	picks := defaultPicks(lg.Season, lg.NumTeams)
	// Team 5 acquired team 0's first-round pick.
	for i, p := range picks {
		if p.Round == 1 && p.OriginalTID == 0 {
			picks[i].TID = 5
		}
	}
	pickRepo := &fakePickRepo{picks: picks}
	app := newTestApp(&fakeTeamRepo{teams: eightTeams()}, pickRepo, newFakePlayerRepo(), &fakeLeagueRepo{}, &fakeEventLogger{}, 7)

	entries, err := app.GenOrder(context.Background(), lg)
	require.NoError(t, err)

	for _, e := range entries {
		if e.Round == 1 && e.OriginalTID == 0 {
			assert.Equal(t, 5, e.TID, "the slot belongs to the acquiring team")
			return
		}
	}
	t.Fatal("no round-1 entry for team 0's slot")
}

func TestGenOrderRoundTwoReversesTiebreak(t *testing.T) {
	// All teams tied on record: round 2 must reverse round 1's ordering
	// among the non-winners, so run it with no lottery movement possible.
	teams := make([]models.Team, 4)
	for i := range teams {
		teams[i] = models.Team{TID: i, WinPct: 0.5, PlayoffRoundsWon: 0}
	}
	lg := models.LeagueContext{NumTeams: 4, Season: 2026}
	pickRepo := &fakePickRepo{picks: defaultPicks(lg.Season, lg.NumTeams)}
	app := newTestApp(&fakeTeamRepo{teams: teams}, pickRepo, newFakePlayerRepo(), &fakeLeagueRepo{}, &fakeEventLogger{}, 11)

	entries, err := app.GenOrder(context.Background(), lg)
	require.NoError(t, err)

	var round1, round2 []int
	for _, e := range entries {
		switch e.Round {
		case 1:
			round1 = append(round1, e.OriginalTID)
		case 2:
			round2 = append(round2, e.OriginalTID)
		}
	}
	require.Len(t, round1, 4)
	for i := range round1 {
		assert.Equal(t, round1[i], round2[len(round2)-1-i], "a full tie reverses round 1 in round 2")
	}
}

func TestGenOrderFantasySnake(t *testing.T) {
	lg := models.LeagueContext{NumTeams: 6, Season: 2026}
	pickRepo := &fakePickRepo{}
	app := newTestApp(&fakeTeamRepo{}, pickRepo, newFakePlayerRepo(), &fakeLeagueRepo{}, &fakeEventLogger{}, 3)

	entries, err := app.GenOrderFantasy(context.Background(), lg, 0)
	require.NoError(t, err)
	require.Len(t, entries, FantasyRounds*lg.NumTeams)

	byRound := make(map[int][]int)
	for _, e := range entries {
		assert.Equal(t, e.TID, e.OriginalTID, "fantasy picks are never traded")
		byRound[e.Round] = append(byRound[e.Round], e.TID)
	}
	require.Len(t, byRound, FantasyRounds)
	for round := 2; round <= FantasyRounds; round++ {
		prev := byRound[round-1]
		cur := byRound[round]
		for i := range cur {
			assert.Equal(t, prev[len(prev)-1-i], cur[i], "round %d must reverse round %d", round, round-1)
		}
	}
	assert.Equal(t, entries, pickRepo.order)
}

func TestGenOrderFantasyUserPosition(t *testing.T) {
	lg := models.LeagueContext{NumTeams: 6, Season: 2026, UserTIDs: []int{2}}
	app := newTestApp(&fakeTeamRepo{}, &fakePickRepo{}, newFakePlayerRepo(), &fakeLeagueRepo{}, &fakeEventLogger{}, 3)

	entries, err := app.GenOrderFantasy(context.Background(), lg, 4)
	require.NoError(t, err)

	for _, e := range entries {
		if e.Round == 1 && e.Pick == 4 {
			assert.Equal(t, 2, e.TID, "the user team drafts at the requested position")
			return
		}
	}
	t.Fatal("no round-1 pick 4 entry")
}
