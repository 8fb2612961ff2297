package wagers

import (
	"database/sql"
	"fmt"

	"github.com/angelmontes7/openplay-wagers/internal/repos/wagers"
	"github.com/shopspring/decimal"
)

func (r *wagersRepo) UpdateTotals(tx *sql.Tx, wagerID string, total decimal.Decimal, count int) error {
	res, err := tx.Exec(`
		UPDATE wagers
		SET total_amount = $2, participant_count = $3, updated_at = now()
		WHERE id = $1
	`, wagerID, total, count)
	if err != nil {
		return fmt.Errorf("update wager totals: %w", err)
	}

	return requireRow(res, "update wager totals")
}

func (r *wagersRepo) UpdateStatus(tx *sql.Tx, wagerID string, status wagers.Status) error {
	res, err := tx.Exec(`
		UPDATE wagers
		SET status = $2, updated_at = now()
		WHERE id = $1
	`, wagerID, status)
	if err != nil {
		return fmt.Errorf("update wager status: %w", err)
	}

	return requireRow(res, "update wager status")
}

func requireRow(res sql.Result, op string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}

	if affected == 0 {
		return wagers.ErrWagerNotFound
	}

	return nil
}
