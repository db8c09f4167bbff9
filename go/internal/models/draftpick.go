package models

import (
	"github.com/google/uuid"
)

// DraftPick is a tradeable future pick. Ownership (TID) can differ from
// OriginalTID after trades; lottery standing always follows OriginalTID.
// Picks for a season are deleted once they are resolved into the draft
// order, at which point they stop being tradeable.
type DraftPick struct {
	ID          uuid.UUID `json:"id"`
	Season      int       `json:"season"`
	Round       int       `json:"round"`
	TID         int       `json:"tid"`
	OriginalTID int       `json:"original_tid"`
}
