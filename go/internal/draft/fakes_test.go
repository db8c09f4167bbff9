package draft

import (
	"context"
	"sort"

	"github.com/mcd-sim/franchise/go/internal/events"
	"github.com/mcd-sim/franchise/go/internal/models"
)

type fakeTeamRepo struct {
	teams []models.Team
}

func (f *fakeTeamRepo) GetSeasonTeams(ctx context.Context, season int) ([]models.Team, error) {
	out := make([]models.Team, len(f.teams))
	copy(out, f.teams)
	return out, nil
}

type fakePickRepo struct {
	picks []models.DraftPick
	order []models.DraftOrderEntry

	created  []models.DraftPick
	setCalls int
}

func (f *fakePickRepo) GetDraftPicksBySeason(ctx context.Context, season int) ([]models.DraftPick, error) {
	out := make([]models.DraftPick, 0, len(f.picks))
	for _, p := range f.picks {
		if p.Season == season {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePickRepo) CreateDraftPicksBatch(ctx context.Context, picks []models.DraftPick) error {
	f.picks = append(f.picks, picks...)
	f.created = append(f.created, picks...)
	return nil
}

func (f *fakePickRepo) ReplaceDraftOrder(ctx context.Context, season int, entries []models.DraftOrderEntry) error {
	kept := f.picks[:0]
	for _, p := range f.picks {
		if p.Season != season {
			kept = append(kept, p)
		}
	}
	f.picks = kept
	f.order = append([]models.DraftOrderEntry(nil), entries...)
	return nil
}

func (f *fakePickRepo) GetDraftOrder(ctx context.Context) ([]models.DraftOrderEntry, error) {
	return append([]models.DraftOrderEntry(nil), f.order...), nil
}

func (f *fakePickRepo) SetDraftOrder(ctx context.Context, entries []models.DraftOrderEntry) error {
	f.order = append([]models.DraftOrderEntry(nil), entries...)
	f.setCalls++
	return nil
}

type fakePlayerRepo struct {
	players map[int]models.Player
}

func newFakePlayerRepo(players ...models.Player) *fakePlayerRepo {
	f := &fakePlayerRepo{players: make(map[int]models.Player, len(players))}
	for _, p := range players {
		f.players[p.PID] = p
	}
	return f
}

func (f *fakePlayerRepo) ListUndrafted(ctx context.Context) ([]models.Player, error) {
	out, err := f.ListByTID(ctx, models.TIDUndrafted)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out, nil
}

func (f *fakePlayerRepo) ListByTID(ctx context.Context, tid int) ([]models.Player, error) {
	var out []models.Player
	for _, p := range f.players {
		if p.TID == tid {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PID < out[j].PID })
	return out, nil
}

func (f *fakePlayerRepo) UpdatePlayer(ctx context.Context, p models.Player) error {
	f.players[p.PID] = p
	return nil
}

type fakeLeagueRepo struct {
	phases []models.Phase
}

func (f *fakeLeagueRepo) UpdatePhase(ctx context.Context, phase, nextPhase models.Phase) error {
	f.phases = append(f.phases, phase)
	return nil
}

type fakeEventLogger struct {
	logged []events.LogEvent
}

func (f *fakeEventLogger) LogEvent(ctx context.Context, ev events.LogEvent) error {
	f.logged = append(f.logged, ev)
	return nil
}
