package player

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/sqlc-dev/pqtype"

	"github.com/mcd-sim/franchise/go/internal/models"
	"github.com/mcd-sim/franchise/go/internal/sqlutil"
)

// Repository stores players in Postgres. Draft metadata lives in a
// nullable JSONB column, NULL until the player is selected.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const playerColumns = `id, pid, tid, name, value, pot, ovr, skills, draft, contract_amount, contract_exp`

func (r *Repository) scanPlayer(scan func(dest ...interface{}) error) (models.Player, error) {
	var p models.Player
	var skills pq.StringArray
	var draft pqtype.NullRawMessage
	if err := scan(&p.ID, &p.PID, &p.TID, &p.Name, &p.Value, &p.Pot, &p.Ovr, &skills, &draft, &p.Contract.Amount, &p.Contract.Exp); err != nil {
		return models.Player{}, err
	}
	p.Skills = []string(skills)
	if draft.Valid {
		var info models.DraftInfo
		if err := sqlutil.FromNullJSON(draft, &info); err != nil {
			return models.Player{}, fmt.Errorf("failed to decode draft info: %w", err)
		}
		p.Draft = &info
	}
	return p, nil
}

func (r *Repository) queryPlayers(ctx context.Context, query string, args ...interface{}) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		p, err := r.scanPlayer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// ListUndrafted returns the draft pool sorted descending by value.
func (r *Repository) ListUndrafted(ctx context.Context) ([]models.Player, error) {
	return r.queryPlayers(ctx,
		`SELECT `+playerColumns+` FROM players WHERE tid = $1 ORDER BY value DESC`,
		models.TIDUndrafted)
}

func (r *Repository) ListByTID(ctx context.Context, tid int) ([]models.Player, error) {
	return r.queryPlayers(ctx,
		`SELECT `+playerColumns+` FROM players WHERE tid = $1 ORDER BY pid`, tid)
}

// UpdatePlayer writes team assignment, draft metadata, and contract.
func (r *Repository) UpdatePlayer(ctx context.Context, p models.Player) error {
	draft, err := toNullDraft(p.Draft)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE players
		 SET tid = $2, draft = $3, contract_amount = $4, contract_exp = $5
		 WHERE pid = $1`,
		p.PID, p.TID, draft, p.Contract.Amount, p.Contract.Exp)
	if err != nil {
		return fmt.Errorf("failed to update player %d: %w", p.PID, err)
	}
	return nil
}

func toNullDraft(info *models.DraftInfo) (pqtype.NullRawMessage, error) {
	if info == nil {
		return pqtype.NullRawMessage{Valid: false}, nil
	}
	raw, err := sqlutil.ToNullJSON(info)
	if err != nil {
		return pqtype.NullRawMessage{}, fmt.Errorf("failed to encode draft info: %w", err)
	}
	return raw, nil
}
