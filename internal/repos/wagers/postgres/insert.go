package wagers

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelmontes7/openplay-wagers/internal/repos/wagers"
	"github.com/jackc/pgx/v5/pgconn"
)

func (r *wagersRepo) Insert(tx *sql.Tx, w *wagers.Wager) error {
	err := tx.QueryRow(`
		INSERT INTO wagers (id, creator_id, facility_id, base_bet_amount,
		                    total_amount, participant_count, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`, w.ID, w.CreatorID, w.FacilityID, w.BaseBetAmount,
		w.TotalAmount, w.ParticipantCount, w.Status,
	).Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert wager: %w", err)
	}

	return nil
}

func (r *wagersRepo) InsertParticipant(tx *sql.Tx, p *wagers.Participant) error {
	err := tx.QueryRow(`
		INSERT INTO wager_participants (wager_id, user_id, team_name, bet_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, joined_at
	`, p.WagerID, p.UserID, p.TeamName, p.BetAmount).Scan(&p.ID, &p.JoinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return wagers.ErrDuplicateParticipant
		}

		return fmt.Errorf("insert participant: %w", err)
	}

	return nil
}
