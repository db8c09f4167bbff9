package draft

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/mcd-sim/franchise/go/internal/events"
	"github.com/mcd-sim/franchise/go/internal/models"
)

// selectionStdev shapes the auto-selection distribution: the top prospect
// is usually but not always taken first.
const selectionStdev = 2.0

// Result reports how far a progression call advanced the draft.
type Result struct {
	State models.DraftState
	// PIDs selected during this call, in selection order.
	PIDs []int
}

// UntilUserOrEnd advances the draft from wherever the order queue stands,
// auto-selecting picks until the next pick belongs to a human-controlled
// team (and auto-play is off) or the queue is exhausted. The loop is
// iterative and persists the remaining queue after every selection, so a
// crash mid-draft resumes cleanly.
func (a *App) UntilUserOrEnd(ctx context.Context, lg models.LeagueContext) (Result, error) {
	order, err := a.pickRepo.GetDraftOrder(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load draft order: %w", err)
	}

	pool, err := a.playerRepo.ListUndrafted(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load draft pool: %w", err)
	}

	res := Result{State: models.DraftStateInProgress}
	for len(order) > 0 {
		next := order[0]

		// The exact-equality check on AutoPlaySeasons is deliberate.
		if lg.AutoPlaySeasons == 0 && lg.IsUserTeam(next.TID) {
			// Peek semantics: the pick stays queued for the human.
			res.State = models.DraftStatePaused
			log.Info().
				Int("tid", next.TID).
				Int("round", next.Round).
				Int("pick", next.Pick).
				Msg("draft paused at human-controlled pick")
			return res, nil
		}

		order = order[1:]

		idx := int(math.Floor(math.Abs(a.src.Gaussian(0, selectionStdev))))
		if idx >= len(pool) {
			idx = len(pool) - 1
		}
		if idx < 0 {
			return res, fmt.Errorf("draft pool exhausted with %d picks remaining", len(order)+1)
		}
		p := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)

		if err := a.SelectPlayer(ctx, lg, next, p); err != nil {
			return res, err
		}
		res.PIDs = append(res.PIDs, p.PID)

		if err := a.pickRepo.SetDraftOrder(ctx, order); err != nil {
			return res, fmt.Errorf("failed to persist draft order: %w", err)
		}
	}

	if err := a.afterDraft(ctx, lg); err != nil {
		return res, err
	}
	res.State = models.DraftStateComplete
	return res, nil
}

// SelectPlayer resolves one pick: team assignment, write-once draft
// metadata, and (outside a fantasy draft) the rookie-scale contract.
func (a *App) SelectPlayer(ctx context.Context, lg models.LeagueContext, pick models.DraftOrderEntry, p models.Player) error {
	p.TID = pick.TID
	if p.Draft == nil {
		p.Draft = &models.DraftInfo{
			Round:       pick.Round,
			Pick:        pick.Pick,
			TID:         pick.TID,
			OriginalTID: pick.OriginalTID,
			Year:        lg.Season,
			Pot:         p.Pot,
			Ovr:         p.Ovr,
			Skills:      p.Skills,
		}
	}

	if lg.Phase != models.PhaseFantasyDraft {
		salaries := RookieSalaries(lg)
		years := RookieContractYears(pick.Round)
		p.Contract = models.Contract{
			Amount: salaries[rookieSalaryIndex(lg, pick.Round, pick.Pick)],
			Exp:    lg.Season + years,
		}
	}

	if err := a.playerRepo.UpdatePlayer(ctx, p); err != nil {
		return fmt.Errorf("failed to save drafted player: %w", err)
	}

	a.logEvent(ctx, events.LogEvent{
		Type:   events.EventTypeDraftPick,
		Text:   fmt.Sprintf("Team %d selected %s with pick %d of round %d.", pick.TID, p.Name, pick.Pick, pick.Round),
		PIDs:   []int{p.PID},
		TIDs:   []int{pick.TID},
		Season: lg.Season,
	})

	log.Debug().
		Int("pid", p.PID).
		Int("tid", pick.TID).
		Int("round", pick.Round).
		Int("pick", pick.Pick).
		Time("at", a.clock.Now()).
		Msg("pick resolved")

	return nil
}

// afterDraft runs the end-of-draft side effects. An ordinary draft
// advances the league to the after-draft phase. A fantasy draft converts
// the remaining undrafted players to free agents, restores displaced
// players to the undrafted pool, and reverts to the pre-draft phase. Both
// conversions snapshot the matching players before mutating, so no store
// iterator is invalidated mid-scan.
func (a *App) afterDraft(ctx context.Context, lg models.LeagueContext) error {
	if lg.Phase != models.PhaseFantasyDraft {
		if err := a.leagueRepo.UpdatePhase(ctx, models.PhaseAfterDraft, lg.NextPhase); err != nil {
			return fmt.Errorf("failed to advance phase after draft: %w", err)
		}
		return nil
	}

	undrafted, err := a.playerRepo.ListByTID(ctx, models.TIDUndrafted)
	if err != nil {
		return fmt.Errorf("failed to list undrafted players: %w", err)
	}
	for _, p := range undrafted {
		p.TID = models.TIDFreeAgent
		if err := a.playerRepo.UpdatePlayer(ctx, p); err != nil {
			return fmt.Errorf("failed to convert player %d to free agent: %w", p.PID, err)
		}
	}

	displaced, err := a.playerRepo.ListByTID(ctx, models.TIDDisplaced)
	if err != nil {
		return fmt.Errorf("failed to list displaced players: %w", err)
	}
	for _, p := range displaced {
		p.TID = models.TIDUndrafted
		if err := a.playerRepo.UpdatePlayer(ctx, p); err != nil {
			return fmt.Errorf("failed to restore player %d to draft pool: %w", p.PID, err)
		}
	}

	if err := a.leagueRepo.UpdatePhase(ctx, lg.NextPhase, lg.NextPhase); err != nil {
		return fmt.Errorf("failed to restore phase after fantasy draft: %w", err)
	}

	log.Info().
		Int("free_agents", len(undrafted)).
		Int("restored", len(displaced)).
		Str("phase", string(lg.NextPhase)).
		Msg("fantasy draft completed")

	return nil
}
