package wagers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelmontes7/openplay-wagers/internal/repos/wagers"
)

const wagerColumns = `id, creator_id, facility_id, base_bet_amount, total_amount,
	participant_count, status, created_at, updated_at`

func (r *wagersRepo) Get(ctx context.Context, wagerID string) (*wagers.Wager, error) {
	var w wagers.Wager

	err := r.db.QueryRowContext(ctx, `
		SELECT `+wagerColumns+`
		FROM wagers
		WHERE id = $1
	`, wagerID).Scan(
		&w.ID, &w.CreatorID, &w.FacilityID, &w.BaseBetAmount, &w.TotalAmount,
		&w.ParticipantCount, &w.Status, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wagers.ErrWagerNotFound
		}

		return nil, fmt.Errorf("get wager: %w", err)
	}

	return &w, nil
}

func (r *wagersRepo) ListByStatus(ctx context.Context, status wagers.Status) ([]wagers.Wager, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+wagerColumns+`
		FROM wagers
		WHERE status = $1
		ORDER BY created_at DESC
	`, status)
	if err != nil {
		return nil, fmt.Errorf("list wagers by status: %w", err)
	}
	defer rows.Close()

	return scanWagers(rows)
}

func (r *wagersRepo) ListByCreator(ctx context.Context, creatorID string) ([]wagers.Wager, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+wagerColumns+`
		FROM wagers
		WHERE creator_id = $1
		ORDER BY created_at DESC
	`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list wagers by creator: %w", err)
	}
	defer rows.Close()

	return scanWagers(rows)
}

func scanWagers(rows *sql.Rows) ([]wagers.Wager, error) {
	var out []wagers.Wager

	for rows.Next() {
		var w wagers.Wager

		err := rows.Scan(&w.ID, &w.CreatorID, &w.FacilityID, &w.BaseBetAmount,
			&w.TotalAmount, &w.ParticipantCount, &w.Status, &w.CreatedAt, &w.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan wager: %w", err)
		}

		out = append(out, w)
	}

	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate wagers: %w", err)
	}

	return out, nil
}
