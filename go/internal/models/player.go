package models

import (
	"github.com/google/uuid"
)

// Sentinel team ids for players outside a franchise roster.
const (
	// TIDUndrafted marks a player waiting in the draft pool.
	TIDUndrafted = -2
	// TIDFreeAgent marks a player available to sign.
	TIDFreeAgent = -1
	// TIDDisplaced marks a player temporarily parked during a fantasy
	// draft, restored to the undrafted pool when it completes.
	TIDDisplaced = -3
)

// DraftInfo is written exactly once, when the player is selected.
type DraftInfo struct {
	Round       int      `json:"round"`
	Pick        int      `json:"pick"`
	TID         int      `json:"tid"`
	OriginalTID int      `json:"original_tid"`
	Year        int      `json:"year"`
	Pot         int      `json:"pot"`
	Ovr         int      `json:"ovr"`
	Skills      []string `json:"skills,omitempty"`
}

// Contract is a player's current deal in thousands of dollars.
type Contract struct {
	Amount int `json:"amount"`
	Exp    int `json:"exp"` // season the contract expires
}

// Player carries the draft-relevant subset of a player record.
type Player struct {
	ID  uuid.UUID `json:"id"`
	PID int       `json:"pid"`
	TID int       `json:"tid"`

	Name string `json:"name"`

	// Value is the precomputed metric the auto-selection distribution
	// ranks candidates by.
	Value float64 `json:"value"`

	Pot    int      `json:"pot"`
	Ovr    int      `json:"ovr"`
	Skills []string `json:"skills,omitempty"`

	Draft    *DraftInfo `json:"draft,omitempty"`
	Contract Contract   `json:"contract"`
}
