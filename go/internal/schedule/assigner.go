// Package schedule partitions a season's matchup list into days and
// maintains the persisted schedule.
package schedule

import (
	"github.com/google/uuid"

	"github.com/mcd-sim/franchise/go/internal/models"
)

// AssignDays turns an ordered list of (home, away) tid pairs into schedule
// entries with derived day numbers. A new day starts when either team
// already plays on the current day, when the matchup is the all-star
// placeholder pair, or when the previous matchup was the placeholder, so
// the all-star game and the matchup right after it always sit on their
// own days.
func AssignDays(tids [][2]int) []models.ScheduleEntry {
	entries := make([]models.ScheduleEntry, 0, len(tids))

	day := 1
	onDay := make(map[int]bool)
	prevAllStar := false

	for _, pair := range tids {
		home, away := pair[0], pair[1]
		allStar := home == models.AllStarHomeTID && away == models.AllStarAwayTID

		if len(onDay) > 0 && (allStar || prevAllStar || onDay[home] || onDay[away]) {
			day++
			onDay = make(map[int]bool)
		}
		onDay[home] = true
		onDay[away] = true
		prevAllStar = allStar

		entries = append(entries, models.ScheduleEntry{
			GID:     uuid.New(),
			Day:     day,
			HomeTID: home,
			AwayTID: away,
		})
	}
	return entries
}
