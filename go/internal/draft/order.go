package draft

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcd-sim/franchise/go/internal/events"
	"github.com/mcd-sim/franchise/go/internal/lottery"
	"github.com/mcd-sim/franchise/go/internal/models"
)

// FantasyRounds is the number of rounds in a fantasy (full re-draft) snake
// order.
const FantasyRounds = 12

// fantasyShuffleBudget bounds the rejection-resampling loop that places
// the user team at a requested position. Exhausting it is non-fatal: the
// unconstrained shuffle is accepted as-is.
const fantasyShuffleBudget = 1000

// GenOrder resolves the complete two-round draft order for the current
// season: lottery for the first three picks, standings order for the rest
// of round 1, and a reversed-tiebreak re-sort for round 2. Consumed
// DraftPicks are deleted and the new order written in a single
// transaction.
func (a *App) GenOrder(ctx context.Context, lg models.LeagueContext) ([]models.DraftOrderEntry, error) {
	teams, err := a.teamRepo.GetSeasonTeams(ctx, lg.Season)
	if err != nil {
		return nil, fmt.Errorf("failed to load season teams: %w", err)
	}

	picks, err := a.ensurePicks(ctx, lg)
	if err != nil {
		return nil, err
	}
	owner := ownerByRound(picks)

	lottery.SortTeams(teams, a.src)

	// Lottery runs over the non-playoff teams only, which sort first.
	numLottery := 0
	for _, t := range teams {
		if t.MadePlayoffs() {
			break
		}
		numLottery++
	}
	lotteryTeams := teams[:numLottery]

	chances := append([]int(nil), lottery.DefaultChances...)
	if len(chances) > numLottery {
		chances = chances[:numLottery]
	}

	// Display pass first (fractional averaging, remainder dropped), then
	// the final integer allocation the draw actually uses.
	display := append([]int(nil), chances...)
	lottery.UpdateChances(display, lotteryTeams, false)
	chancePcts := lottery.ChancePercentages(display)
	lottery.UpdateChances(chances, lotteryTeams, true)

	winners := lottery.DrawWinners(chances, lotteryTeams, a.src)

	// Round 1: winners take picks 1-3, everyone else follows in sorted
	// order.
	won := make(map[int]bool, lottery.NumWinners)
	for _, w := range winners {
		won[w] = true
	}
	round1 := make([]models.Team, 0, len(teams))
	for _, w := range winners {
		round1 = append(round1, lotteryTeams[w])
	}
	for i, t := range teams {
		if i < numLottery && won[i] {
			continue
		}
		round1 = append(round1, t)
	}

	// Round 2 re-sorts by win percentage with the random tiebreak
	// reversed, so the same tied teams do not lead both rounds.
	round2 := append([]models.Team(nil), teams...)
	sort.SliceStable(round2, func(i, j int) bool {
		if round2[i].WinPct != round2[j].WinPct {
			return round2[i].WinPct < round2[j].WinPct
		}
		return round2[i].RandVal > round2[j].RandVal
	})

	entries := make([]models.DraftOrderEntry, 0, 2*len(teams))
	for i, t := range round1 {
		entries = append(entries, models.DraftOrderEntry{
			Round:       1,
			Pick:        i + 1,
			TID:         resolveOwner(owner, 1, t.TID),
			OriginalTID: t.TID,
		})
	}
	for i, t := range round2 {
		entries = append(entries, models.DraftOrderEntry{
			Round:       2,
			Pick:        i + 1,
			TID:         resolveOwner(owner, 2, t.TID),
			OriginalTID: t.TID,
		})
	}

	if err := a.pickRepo.ReplaceDraftOrder(ctx, lg.Season, entries); err != nil {
		return nil, fmt.Errorf("failed to replace draft order: %w", err)
	}

	a.logLotteryEvents(ctx, lg, lotteryTeams, chancePcts, round1)

	log.Info().
		Int("season", lg.Season).
		Int("entries", len(entries)).
		Int("lottery_teams", numLottery).
		Msg("draft order generated")

	return entries, nil
}

// ensurePicks loads the season's DraftPick records, generating the default
// set when none exist. Regeneration is defensive and idempotent: it never
// double-creates picks when records are already present.
func (a *App) ensurePicks(ctx context.Context, lg models.LeagueContext) ([]models.DraftPick, error) {
	picks, err := a.pickRepo.GetDraftPicksBySeason(ctx, lg.Season)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft picks: %w", err)
	}
	if len(picks) > 0 {
		return picks, nil
	}

	log.Info().Int("season", lg.Season).Msg("no draft picks found; regenerating default set")

	picks = make([]models.DraftPick, 0, lg.NumTeams*2)
	for round := 1; round <= 2; round++ {
		for tid := 0; tid < lg.NumTeams; tid++ {
			picks = append(picks, models.DraftPick{
				ID:          uuid.New(),
				Season:      lg.Season,
				Round:       round,
				TID:         tid,
				OriginalTID: tid,
			})
		}
	}
	if err := a.pickRepo.CreateDraftPicksBatch(ctx, picks); err != nil {
		return nil, fmt.Errorf("failed to create default draft picks: %w", err)
	}
	return picks, nil
}

// GenOrderFantasy produces a FantasyRounds-round snake order from a
// uniformly shuffled team permutation. When position is in [1, numTeams],
// the shuffle is resampled until the first user team lands at that
// position or the retry budget runs out, after which the unconstrained
// shuffle stands.
func (a *App) GenOrderFantasy(ctx context.Context, lg models.LeagueContext, position int) ([]models.DraftOrderEntry, error) {
	tids := make([]int, lg.NumTeams)
	for i := range tids {
		tids[i] = i
	}

	a.src.Shuffle(len(tids), func(i, j int) { tids[i], tids[j] = tids[j], tids[i] })
	if position >= 1 && position <= lg.NumTeams && len(lg.UserTIDs) > 0 {
		userTID := lg.UserTIDs[0]
		for attempt := 0; attempt < fantasyShuffleBudget; attempt++ {
			if tids[position-1] == userTID {
				break
			}
			a.src.Shuffle(len(tids), func(i, j int) { tids[i], tids[j] = tids[j], tids[i] })
		}
		if tids[position-1] != userTID {
			log.Warn().
				Int("position", position).
				Int("user_tid", userTID).
				Msg("fantasy shuffle budget exhausted; keeping unconstrained order")
		}
	}

	entries := make([]models.DraftOrderEntry, 0, FantasyRounds*len(tids))
	for round := 1; round <= FantasyRounds; round++ {
		for i := 0; i < len(tids); i++ {
			slot := i
			if round%2 == 0 {
				slot = len(tids) - 1 - i
			}
			entries = append(entries, models.DraftOrderEntry{
				Round:       round,
				Pick:        i + 1,
				TID:         tids[slot],
				OriginalTID: tids[slot],
			})
		}
	}

	if err := a.pickRepo.SetDraftOrder(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to set fantasy draft order: %w", err)
	}

	log.Info().Int("rounds", FantasyRounds).Int("entries", len(entries)).Msg("fantasy draft order generated")
	return entries, nil
}

// logLotteryEvents emits the news-feed entries for a resolved lottery: a
// movement event per team that could have won, and a chance event per
// lottery-eligible team. All best effort.
func (a *App) logLotteryEvents(ctx context.Context, lg models.LeagueContext, lotteryTeams []models.Team, chancePcts []float64, round1 []models.Team) {
	finalPick := make(map[int]int, len(round1))
	for i, t := range round1 {
		finalPick[t.TID] = i + 1
	}

	for i, t := range lotteryTeams {
		slot := i + 1
		pick := finalPick[t.TID]

		var text string
		switch {
		case pick < slot:
			text = fmt.Sprintf("Team %d moved up in the draft lottery, from pick %d to pick %d.", t.TID, slot, pick)
		case pick > slot:
			text = fmt.Sprintf("Team %d moved down in the draft lottery, from pick %d to pick %d.", t.TID, slot, pick)
		default:
			text = fmt.Sprintf("Team %d stayed at pick %d in the draft lottery.", t.TID, pick)
		}
		a.logEvent(ctx, events.LogEvent{
			Type:             events.EventTypeDraftLottery,
			Text:             text,
			TIDs:             []int{t.TID},
			Season:           lg.Season,
			ShowNotification: lg.IsUserTeam(t.TID),
		})

		pct := 0.0
		if i < len(chancePcts) {
			pct = chancePcts[i]
		}
		a.logEvent(ctx, events.LogEvent{
			Type:   events.EventTypeDraftLotteryChances,
			Text:   fmt.Sprintf("Team %d had a %.1f%% chance of winning the top pick.", t.TID, pct),
			TIDs:   []int{t.TID},
			Season: lg.Season,
		})
	}
}

func ownerByRound(picks []models.DraftPick) map[int]map[int]int {
	owner := make(map[int]map[int]int)
	for _, p := range picks {
		if owner[p.Round] == nil {
			owner[p.Round] = make(map[int]int)
		}
		owner[p.Round][p.OriginalTID] = p.TID
	}
	return owner
}

func resolveOwner(owner map[int]map[int]int, round, originalTID int) int {
	if byOrig, ok := owner[round]; ok {
		if tid, ok := byOrig[originalTID]; ok {
			return tid
		}
	}
	return originalTID
}
