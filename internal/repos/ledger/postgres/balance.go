package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelmontes7/openplay-wagers/internal/repos/ledger"
	"github.com/shopspring/decimal"
)

func (r *ledgerRepo) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	var balance decimal.Decimal

	err := r.db.QueryRowContext(ctx, `
		SELECT balance
		FROM balances
		WHERE user_id = $1
	`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, ledger.ErrAccountNotFound
		}

		return decimal.Zero, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}

func (r *ledgerRepo) LockAndGetBalance(tx *sql.Tx, userID string) (decimal.Decimal, error) {
	var balance decimal.Decimal

	err := tx.QueryRow(`
		SELECT balance
		FROM balances
		WHERE user_id = $1
		FOR UPDATE
	`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, ledger.ErrAccountNotFound
		}

		return decimal.Zero, fmt.Errorf("lock/get balance: %w", err)
	}

	return balance, nil
}

func (r *ledgerRepo) EnsureAccount(tx *sql.Tx, userID string) error {
	_, err := tx.Exec(`
		INSERT INTO balances (user_id, balance)
		VALUES ($1, 0)
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if err != nil {
		return fmt.Errorf("ensure account: %w", err)
	}

	return nil
}

func (r *ledgerRepo) Credit(tx *sql.Tx, userID string, amount decimal.Decimal) error {
	res, err := tx.Exec(`
		UPDATE balances
		SET balance = balance + $2, updated_at = now()
		WHERE user_id = $1
	`, userID, amount)
	if err != nil {
		return fmt.Errorf("credit balance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("credit balance: rows affected: %w", err)
	}

	if affected == 0 {
		return ledger.ErrAccountNotFound
	}

	return nil
}

func (r *ledgerRepo) Debit(tx *sql.Tx, userID string, amount decimal.Decimal) error {
	res, err := tx.Exec(`
		UPDATE balances
		SET balance = balance - $2, updated_at = now()
		WHERE user_id = $1
		  AND balance >= $2
	`, userID, amount)
	if err != nil {
		return fmt.Errorf("debit balance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("debit balance: rows affected: %w", err)
	}

	if affected == 0 {
		return ledger.ErrInsufficientFunds
	}

	return nil
}
