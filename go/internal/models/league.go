package models

// Phase defines where the league currently is in its season cycle.
type Phase string

const (
	PhasePreseason     Phase = "PRESEASON"
	PhaseRegularSeason Phase = "REGULAR_SEASON"
	PhasePlayoffs      Phase = "PLAYOFFS"
	PhaseBeforeDraft   Phase = "BEFORE_DRAFT"
	PhaseDraft         Phase = "DRAFT"
	PhaseAfterDraft    Phase = "AFTER_DRAFT"
	PhaseFreeAgency    Phase = "FREE_AGENCY"
	PhaseFantasyDraft  Phase = "FANTASY_DRAFT"
)

// LeagueContext is an immutable snapshot of the league-global parameters
// consumed by the core routines. It is loaded once per operation and passed
// explicitly instead of being read from shared mutable state.
type LeagueContext struct {
	NumTeams int `json:"num_teams"`
	Season   int `json:"season"`

	Phase Phase `json:"phase"`
	// NextPhase is the phase to restore when a fantasy draft completes.
	NextPhase Phase `json:"next_phase"`

	// UserTIDs are the teams controlled by humans.
	UserTIDs []int `json:"user_tids"`

	// AutoPlaySeasons is the number of seasons left to simulate without
	// human input. The draft pauses on a human pick only when this is
	// exactly zero.
	AutoPlaySeasons int `json:"auto_play_seasons"`

	// Contract bounds in thousands of dollars.
	MinContract int `json:"min_contract"`
	MaxContract int `json:"max_contract"`
}

// IsUserTeam reports whether tid is controlled by a human.
func (lg LeagueContext) IsUserTeam(tid int) bool {
	for _, t := range lg.UserTIDs {
		if t == tid {
			return true
		}
	}
	return false
}
