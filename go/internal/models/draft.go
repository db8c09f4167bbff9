package models

// DraftState is the control-flow outcome of a draft-progression call.
type DraftState string

const (
	DraftStateInProgress DraftState = "IN_PROGRESS"
	DraftStatePaused     DraftState = "PAUSED"
	DraftStateComplete   DraftState = "COMPLETE"
)

// DraftOrderEntry is one resolved slot in the league's draft order. The
// order is a global singleton per league, replaced wholesale each time it
// is regenerated.
type DraftOrderEntry struct {
	Round       int `json:"round"`
	Pick        int `json:"pick"`
	TID         int `json:"tid"`
	OriginalTID int `json:"original_tid"`
}
