package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcd-sim/franchise/go/internal/models"
)

func days(entries []models.ScheduleEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Day
	}
	return out
}

func TestAssignDays(t *testing.T) {
	allStar := [2]int{models.AllStarHomeTID, models.AllStarAwayTID}

	tests := []struct {
		name string
		tids [][2]int
		want []int
	}{
		{
			name: "empty input",
			tids: nil,
			want: []int{},
		},
		{
			name: "disjoint matchups share a day",
			tids: [][2]int{{0, 1}, {2, 3}, {0, 2}},
			want: []int{1, 1, 2},
		},
		{
			name: "repeated team starts a new day",
			tids: [][2]int{{0, 1}, {1, 2}},
			want: []int{1, 2},
		},
		{
			name: "repeated away team starts a new day",
			tids: [][2]int{{0, 1}, {2, 1}},
			want: []int{1, 2},
		},
		{
			name: "all-star game is isolated",
			tids: [][2]int{{0, 1}, allStar, {2, 3}, {4, 5}},
			want: []int{1, 2, 3, 3},
		},
		{
			name: "leading all-star game keeps its own day",
			tids: [][2]int{allStar, {0, 1}, {2, 3}},
			want: []int{1, 2, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := AssignDays(tt.tids)
			assert.Equal(t, tt.want, days(entries))
		})
	}
}

func TestAssignDaysPreservesMatchups(t *testing.T) {
	tids := [][2]int{{0, 1}, {2, 3}, {1, 2}}

	entries := AssignDays(tids)

	require.Len(t, entries, len(tids))
	for i, e := range entries {
		assert.Equal(t, tids[i][0], e.HomeTID)
		assert.Equal(t, tids[i][1], e.AwayTID)
		assert.NotEqual(t, e.GID.String(), "00000000-0000-0000-0000-000000000000")
	}
}

func TestIsAllStar(t *testing.T) {
	entries := AssignDays([][2]int{{models.AllStarHomeTID, models.AllStarAwayTID}, {0, 1}})

	assert.True(t, entries[0].IsAllStar())
	assert.False(t, entries[1].IsAllStar())
}
