package models

// Team is a per-season snapshot of a franchise's standing, fed into the
// lottery and draft-order routines.
type Team struct {
	TID int `json:"tid"`
	CID int `json:"cid"`

	WinPct float64 `json:"win_pct"`

	// PlayoffRoundsWon is negative when the team missed the playoffs.
	PlayoffRoundsWon int `json:"playoff_rounds_won"`

	// RandVal is a per-call tiebreak value assigned before sorting. It is
	// regenerated on every sort, so tied teams do not break the same way
	// twice.
	RandVal float64 `json:"-"`
}

// MadePlayoffs reports whether the team qualified for the playoffs in the
// season being drafted for.
func (t Team) MadePlayoffs() bool {
	return t.PlayoffRoundsWon >= 0
}
