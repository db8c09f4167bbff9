package draft

import (
	"github.com/mcd-sim/franchise/go/internal/models"
)

// defaultMinContract/defaultMaxContract are the bounds the base rookie
// scale was written against. The table is returned literally at these
// defaults and rescaled linearly otherwise.
const (
	defaultMinContract = 500
	defaultMaxContract = 20000
)

// rookieSalaryBase is the rookie salary scale by flattened pick index, in
// thousands of dollars, for a two-round 30-team draft.
var rookieSalaryBase = []int{
	5000, 4500, 4000, 3500, 3000, 2750, 2500, 2250, 2000, 1900,
	1800, 1700, 1600, 1500, 1400, 1300, 1200, 1100, 1000, 1000,
	1000, 1000, 1000, 900, 900, 900, 900, 900, 800, 800,
	800, 800, 800, 700, 700, 700, 700, 700, 600, 600,
	600, 600, 600, 500, 500, 500, 500, 500, 500, 500,
	500, 500, 500, 500, 500, 500, 500, 500, 500, 500,
}

// RookieSalaries returns the rookie salary scale for the league's contract
// bounds. With default bounds the literal base table is returned; any
// other bounds rescale every entry linearly, which preserves the table's
// descending order.
func RookieSalaries(lg models.LeagueContext) []int {
	salaries := append([]int(nil), rookieSalaryBase...)
	if lg.MinContract == defaultMinContract && lg.MaxContract == defaultMaxContract {
		return salaries
	}
	span := defaultMaxContract - defaultMinContract
	for i, s := range salaries {
		salaries[i] = (s-defaultMinContract)*(lg.MaxContract-lg.MinContract)/span + lg.MinContract
	}
	return salaries
}

// RookieContractYears is the contract length for a pick in the given
// round: 3 years for round 1, 2 years for round 2.
func RookieContractYears(round int) int {
	return 4 - round
}

// rookieSalaryIndex flattens a (round, pick) pair into the salary table.
func rookieSalaryIndex(lg models.LeagueContext, round, pick int) int {
	i := pick - 1 + lg.NumTeams*(round-1)
	if i < 0 {
		return 0
	}
	if i >= len(rookieSalaryBase) {
		return len(rookieSalaryBase) - 1
	}
	return i
}
