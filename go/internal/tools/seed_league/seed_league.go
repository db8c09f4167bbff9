// Command seed_league bootstraps a fresh league: the league parameter
// row, per-season team snapshots with randomized records, team ratings,
// tradeable draft picks, and a generated draft class.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcd-sim/franchise/go/internal/dbconfig"
	"github.com/mcd-sim/franchise/go/internal/models"
	"github.com/mcd-sim/franchise/go/internal/randutil"
)

const (
	numTeams       = 30
	season         = 2026
	draftClassSize = 70
	playoffTeams   = 16
)

func main() {
	ctx := context.Background()

	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect error: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	src := randutil.NewFromClock()

	if err := seedLeague(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "seed league: %v\n", err)
		os.Exit(1)
	}
	if err := seedTeams(ctx, pool, src); err != nil {
		fmt.Fprintf(os.Stderr, "seed teams: %v\n", err)
		os.Exit(1)
	}
	if err := seedDraftPicks(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "seed draft picks: %v\n", err)
		os.Exit(1)
	}
	if err := seedDraftClass(ctx, pool, src); err != nil {
		fmt.Fprintf(os.Stderr, "seed draft class: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded league with %d teams and a %d-player draft class\n", numTeams, draftClassSize)
}

func seedLeague(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO league (num_teams, season, phase, next_phase, user_tids,
		                     auto_play_seasons, min_contract, max_contract)
		 VALUES ($1, $2, $3, $4, $5, 0, 500, 20000)`,
		numTeams, season, models.PhaseBeforeDraft, models.PhaseBeforeDraft, []int64{0})
	return err
}

func seedTeams(ctx context.Context, pool *pgxpool.Pool, src randutil.Source) error {
	// Best records make the playoffs; everyone else enters the lottery.
	winPcts := make([]float64, numTeams)
	for i := range winPcts {
		winPcts[i] = 0.15 + 0.7*src.Float64()
	}
	order := make([]int, numTeams)
	for i := range order {
		order[i] = i
	}
	// Rank teams by record to decide playoff qualification.
	for i := 0; i < numTeams; i++ {
		for j := i + 1; j < numTeams; j++ {
			if winPcts[order[j]] > winPcts[order[i]] {
				order[i], order[j] = order[j], order[i]
			}
		}
	}
	madePlayoffs := make(map[int]bool, playoffTeams)
	for _, tid := range order[:playoffTeams] {
		madePlayoffs[tid] = true
	}

	for tid := 0; tid < numTeams; tid++ {
		rounds := -1
		if madePlayoffs[tid] {
			rounds = src.UniformInt(0, 4)
		}
		var roundsVal interface{}
		if rounds >= 0 {
			roundsVal = rounds
		}
		if _, err := pool.Exec(ctx,
			`INSERT INTO team_seasons (tid, cid, season, win_pct, playoff_rounds_won)
			 VALUES ($1, $2, $3, $4, $5)`,
			tid, tid%2, season, winPcts[tid], roundsVal); err != nil {
			return err
		}
		if _, err := pool.Exec(ctx,
			`INSERT INTO team_ratings (tid, ovr) VALUES ($1, $2)`,
			tid, 40+int(50*winPcts[tid])); err != nil {
			return err
		}
	}
	return nil
}

func seedDraftPicks(ctx context.Context, pool *pgxpool.Pool) error {
	for round := 1; round <= 2; round++ {
		for tid := 0; tid < numTeams; tid++ {
			if _, err := pool.Exec(ctx,
				`INSERT INTO draft_picks (id, season, round, tid, original_tid)
				 VALUES ($1, $2, $3, $4, $5)`,
				uuid.New(), season, round, tid, tid); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedDraftClass(ctx context.Context, pool *pgxpool.Pool, src randutil.Source) error {
	for pid := 1; pid <= draftClassSize; pid++ {
		ovr := src.UniformInt(35, 65)
		pot := ovr + src.UniformInt(0, 25)
		value := float64(ovr) + 0.5*float64(pot-ovr) + src.Gaussian(0, 1)
		if _, err := pool.Exec(ctx,
			`INSERT INTO players (id, pid, tid, name, value, pot, ovr,
			                      skills, draft, contract_amount, contract_exp)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, '{}', NULL, 0, 0)`,
			uuid.New(), pid, models.TIDUndrafted,
			fmt.Sprintf("Prospect %d", pid), value, pot, ovr); err != nil {
			return err
		}
	}
	return nil
}
