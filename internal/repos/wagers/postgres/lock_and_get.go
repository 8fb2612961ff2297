package wagers

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelmontes7/openplay-wagers/internal/repos/wagers"
)

func (r *wagersRepo) LockAndGet(tx *sql.Tx, wagerID string) (*wagers.Wager, error) {
	var w wagers.Wager

	err := tx.QueryRow(`
		SELECT id, creator_id, facility_id, base_bet_amount, total_amount,
		       participant_count, status, created_at, updated_at
		FROM wagers
		WHERE id = $1
		FOR UPDATE
	`, wagerID).Scan(
		&w.ID, &w.CreatorID, &w.FacilityID, &w.BaseBetAmount, &w.TotalAmount,
		&w.ParticipantCount, &w.Status, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wagers.ErrWagerNotFound
		}

		return nil, fmt.Errorf("lock/get wager: %w", err)
	}

	return &w, nil
}
