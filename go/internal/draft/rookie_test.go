package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcd-sim/franchise/go/internal/models"
)

func TestRookieSalariesDefaultBounds(t *testing.T) {
	lg := models.LeagueContext{NumTeams: 30, MinContract: 500, MaxContract: 20000}

	salaries := RookieSalaries(lg)

	require.Len(t, salaries, 60)
	assert.Equal(t, 5000, salaries[0])
	assert.Equal(t, 800, salaries[30])
	assert.Equal(t, 500, salaries[59])
}

func TestRookieSalariesRescaled(t *testing.T) {
	lg := models.LeagueContext{NumTeams: 30, MinContract: 250, MaxContract: 10000}

	salaries := RookieSalaries(lg)

	// (5000-500)*(10000-250)/19500 + 250
	assert.Equal(t, 2500, salaries[0])
	assert.Equal(t, lg.MinContract, salaries[59], "the table floor maps to the league minimum")
	for i := 1; i < len(salaries); i++ {
		assert.LessOrEqual(t, salaries[i], salaries[i-1], "rescaling preserves descending order at index %d", i)
	}
}

func TestRookieContractYears(t *testing.T) {
	assert.Equal(t, 3, RookieContractYears(1))
	assert.Equal(t, 2, RookieContractYears(2))
}

func TestRookieSalaryIndexClamps(t *testing.T) {
	lg := models.LeagueContext{NumTeams: 32}

	assert.Equal(t, 0, rookieSalaryIndex(lg, 1, 1))
	assert.Equal(t, 32, rookieSalaryIndex(lg, 2, 1))
	// Round 2 pick 32 in a 32-team league runs past the 60-entry table.
	assert.Equal(t, 59, rookieSalaryIndex(lg, 2, 32))
}
