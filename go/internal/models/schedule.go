package models

import (
	"github.com/google/uuid"
)

// All-star game placeholder ids. The all-star matchup and the matchup
// immediately after it always occupy their own days.
const (
	AllStarHomeTID = -1
	AllStarAwayTID = -2
)

// ScheduleEntry is one scheduled matchup. Day is derived by the assigner,
// never supplied as input.
type ScheduleEntry struct {
	GID     uuid.UUID `json:"gid"`
	Day     int       `json:"day"`
	HomeTID int       `json:"home_tid"`
	AwayTID int       `json:"away_tid"`
}

// IsAllStar reports whether the entry is the all-star placeholder matchup.
func (e ScheduleEntry) IsAllStar() bool {
	return e.HomeTID == AllStarHomeTID && e.AwayTID == AllStarAwayTID
}
