// Package lottery computes weighted draft-lottery chances and resolves the
// lottery draw. Teams tied on win percentage share averaged ping-pong-ball
// weights; the three lottery winners are drawn from cumulative buckets.
package lottery

import (
	"sort"

	"github.com/mcd-sim/franchise/go/internal/models"
	"github.com/mcd-sim/franchise/go/internal/randutil"
)

// DefaultChances is the base ping-pong-ball weight table for a 14-team
// lottery. It sums to 1000.
var DefaultChances = []int{250, 199, 156, 119, 88, 63, 43, 28, 17, 11, 8, 7, 6, 5}

// NumWinners is how many lottery slots are drawn before the order reverts
// to standings.
const NumWinners = 3

// randValPenalty is added to a lottery winner's tiebreak value so it sorts
// later within its own weight class on subsequent display passes. It does
// not affect draw probability.
const randValPenalty = 30

// SortTeams orders teams worst-to-best for the lottery: non-playoff teams
// before playoff teams, then ascending win percentage, remaining ties
// broken by a fresh random value assigned to every team on each call.
// Regenerating the order therefore breaks ties differently each time.
func SortTeams(teams []models.Team, src randutil.Source) {
	for i := range teams {
		teams[i].RandVal = src.Float64() * float64(len(teams))
	}
	sort.SliceStable(teams, func(i, j int) bool {
		a, b := teams[i], teams[j]
		if a.MadePlayoffs() != b.MadePlayoffs() {
			return !a.MadePlayoffs()
		}
		if a.WinPct != b.WinPct {
			return a.WinPct < b.WinPct
		}
		return a.RandVal < b.RandVal
	})
}

// UpdateChances averages weights in place across teams tied on win
// percentage. teams must already be sorted worst-to-best. For a tie group
// of size k spanning [tc, tc+k) the group's weights become their sum
// divided by k; when isFinal is true the integer remainder is handed out
// one unit at a time to the group's first members so the total weight is
// preserved exactly, otherwise the remainder is dropped (display-only
// pass). A group straddling the end of the chances array is truncated to
// fit the boundary.
func UpdateChances(chances []int, teams []models.Team, isFinal bool) {
	tc := 0
	i := 0
	for i < len(teams) && tc < len(chances) {
		// Extent of the tie group starting at i.
		k := 1
		for i+k < len(teams) && teams[i+k].WinPct == teams[i].WinPct {
			k++
		}
		i += k

		if tc+k > len(chances) {
			k = len(chances) - tc
		}
		if k > 1 {
			total := 0
			for j := tc; j < tc+k; j++ {
				total += chances[j]
			}
			div := total / k
			rem := total % k
			for j := tc; j < tc+k; j++ {
				chances[j] = div
				if isFinal && j-tc < rem {
					chances[j]++
				}
			}
		}
		tc += k
	}
}

// ChancePercentages converts integer weights to percentages of the total.
func ChancePercentages(chances []int) []float64 {
	total := 0
	for _, c := range chances {
		total += c
	}
	pcts := make([]float64, len(chances))
	if total == 0 {
		return pcts
	}
	for i, c := range chances {
		pcts[i] = 100 * float64(c) / float64(total)
	}
	return pcts
}

// DrawWinners draws up to NumWinners lottery slots; with fewer eligible
// teams than winners, every eligible team wins a slot. The returned values
// index into the sorted team slice the chances were computed for. A draw
// landing on a team that already won is rejected and resampled. Each winner
// is penalized in its tiebreak value for later display sorting.
//
// Precondition: len(chances) <= len(teams). A mismatch the other way is
// caller misuse, not a recoverable condition.
func DrawWinners(chances []int, teams []models.Team, src randutil.Source) []int {
	cumsum := make([]int, len(chances))
	running := 0
	for i, c := range chances {
		running += c
		cumsum[i] = running
	}

	numWinners := NumWinners
	if numWinners > len(chances) {
		numWinners = len(chances)
	}
	winners := make([]int, numWinners)
	taken := make(map[int]bool, numWinners)
	for slot := 0; slot < numWinners; slot++ {
		for {
			draw := src.UniformInt(0, running-1)
			j := sort.Search(len(cumsum), func(i int) bool { return cumsum[i] > draw })
			if taken[j] {
				continue
			}
			taken[j] = true
			winners[slot] = j
			teams[j].RandVal += randValPenalty
			break
		}
	}
	return winners
}
