package lottery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcd-sim/franchise/go/internal/models"
	"github.com/mcd-sim/franchise/go/internal/randutil"
)

func lotteryTeams(winPcts []float64) []models.Team {
	teams := make([]models.Team, len(winPcts))
	for i, wp := range winPcts {
		teams[i] = models.Team{TID: i, WinPct: wp, PlayoffRoundsWon: -1}
	}
	return teams
}

func TestUpdateChancesAllDistinct(t *testing.T) {
	teams := lotteryTeams([]float64{0.1, 0.15, 0.2, 0.25, 0.3, 0.35, 0.4, 0.42, 0.44, 0.46, 0.48, 0.5, 0.52, 0.54})
	chances := append([]int(nil), DefaultChances...)

	UpdateChances(chances, teams, true)

	assert.Equal(t, DefaultChances, chances, "distinct win percentages must leave the base table untouched")
}

func TestUpdateChancesFullTie(t *testing.T) {
	winPcts := make([]float64, 14)
	for i := range winPcts {
		winPcts[i] = 0.5
	}
	teams := lotteryTeams(winPcts)
	chances := append([]int(nil), DefaultChances...)

	UpdateChances(chances, teams, true)

	total := 0
	for i, c := range chances {
		total += c
		if i < 1000%14 {
			assert.Equal(t, 1000/14+1, c, "index %d", i)
		} else {
			assert.Equal(t, 1000/14, c, "index %d", i)
		}
	}
	assert.Equal(t, 1000, total, "final averaging must preserve the total weight")
}

func TestUpdateChancesNonFinalDropsRemainder(t *testing.T) {
	teams := lotteryTeams([]float64{0.2, 0.2, 0.2, 0.3})
	chances := []int{250, 199, 156, 119}

	UpdateChances(chances, teams, false)

	// 250+199+156 = 605, 605/3 = 201 with remainder 2 dropped.
	assert.Equal(t, []int{201, 201, 201, 119}, chances)
}

func TestUpdateChancesClipsAtBoundary(t *testing.T) {
	// Five tied teams but only four chance slots: the group truncates to
	// fit exactly at the boundary.
	teams := lotteryTeams([]float64{0.1, 0.2, 0.2, 0.2, 0.2})
	chances := []int{100, 80, 60, 40}

	UpdateChances(chances, teams, true)

	// Tie group spans slots 1..3: 80+60+40 = 180 -> 60 each.
	assert.Equal(t, []int{100, 60, 60, 60}, chances)
}

func TestChancePercentagesSumTo100(t *testing.T) {
	pcts := ChancePercentages(DefaultChances)
	sum := 0.0
	for _, p := range pcts {
		sum += p
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
	assert.InDelta(t, 25.0, pcts[0], 1e-9, "worst team holds 250/1000")
}

func TestDrawWinnersDistinct(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		src := randutil.New(seed)
		teams := lotteryTeams(make([]float64, 14))
		chances := append([]int(nil), DefaultChances...)

		winners := DrawWinners(chances, teams, src)

		seen := map[int]bool{}
		for _, w := range winners {
			require.GreaterOrEqual(t, w, 0)
			require.Less(t, w, len(chances))
			require.False(t, seen[w], "seed %d drew a duplicate winner", seed)
			seen[w] = true
		}
	}
}

func TestDrawWinnersFewerTeamsThanSlots(t *testing.T) {
	src := randutil.New(9)
	teams := lotteryTeams([]float64{0.1, 0.2})
	chances := []int{100, 50}

	winners := DrawWinners(chances, teams, src)

	require.Len(t, winners, 2, "two eligible teams yield two winners")
	assert.NotEqual(t, winners[0], winners[1])
}

func TestSortTeamsNonPlayoffFirst(t *testing.T) {
	src := randutil.New(1)
	teams := []models.Team{
		{TID: 0, WinPct: 0.3, PlayoffRoundsWon: 2},
		{TID: 1, WinPct: 0.7, PlayoffRoundsWon: -1},
		{TID: 2, WinPct: 0.2, PlayoffRoundsWon: -1},
		{TID: 3, WinPct: 0.1, PlayoffRoundsWon: 0},
	}

	SortTeams(teams, src)

	assert.Equal(t, 2, teams[0].TID, "worst non-playoff team sorts first")
	assert.Equal(t, 1, teams[1].TID)
	assert.True(t, teams[2].MadePlayoffs())
	assert.True(t, teams[3].MadePlayoffs())
	assert.Equal(t, 3, teams[2].TID, "playoff teams sort by win percentage among themselves")
}
