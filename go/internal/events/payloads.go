// Package events holds the payload types shared between the core routines,
// the outbox relay, and the UI gateway.
package events

// EventType identifies a news-feed event.
type EventType string

const (
	EventTypeDraftLottery        EventType = "DraftLottery"
	EventTypeDraftLotteryChances EventType = "DraftLotteryChances"
	EventTypeDraftPick           EventType = "DraftPick"
	EventTypeScheduleSet         EventType = "ScheduleSet"
)

// LogEvent is an append-only news-feed entry. Logging is best effort:
// failures never abort the state transition that produced the event.
type LogEvent struct {
	Type             EventType `json:"type"`
	Text             string    `json:"text"`
	PIDs             []int     `json:"pids,omitempty"`
	TIDs             []int     `json:"tids,omitempty"`
	Season           int       `json:"season"`
	ShowNotification bool      `json:"show_notification"`
}

// UpcomingGameTeam is one side of an upcoming matchup in the UI projection.
type UpcomingGameTeam struct {
	TID      int  `json:"tid"`
	Ovr      int  `json:"ovr"`
	Playoffs bool `json:"playoffs"`
}

// UpcomingGame is the simplified view pushed to the presentation layer
// after the schedule is set. The core never reads UI state back.
type UpcomingGame struct {
	GID   string              `json:"gid"`
	Teams [2]UpcomingGameTeam `json:"teams"`
}
