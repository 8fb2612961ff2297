// Package balance funds and reads the ledger balances the wager engine
// settles against. The payments flow that tokenizes cards lives outside
// this service; it lands here as plain add/subtract ledger actions.
package balance

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/angelmontes7/openplay-wagers/internal/infra/pgutils"
	"github.com/angelmontes7/openplay-wagers/internal/repos/ledger"
	pgledger "github.com/angelmontes7/openplay-wagers/internal/repos/ledger/postgres"
)

type Service struct {
	db     *sql.DB
	ledger ledger.Ledger
}

func New(db *sql.DB) *Service {
	return &Service{
		db:     db,
		ledger: pgledger.New(db),
	}
}

// Fund applies an add or subtract to the user's balance and records the
// transaction, all in one DB transaction:
//
// 1) Ensure the balance row exists (first add creates it).
// 2) Lock the row (FOR UPDATE).
// 3) Apply the effect.
// 4) Append the transaction log entry.
func (s *Service) Fund(ctx context.Context, userID string, action Action, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	amount = amount.Round(2)

	var newBalance decimal.Decimal

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		err := s.ledger.EnsureAccount(tx, userID)
		if err != nil {
			return fmt.Errorf("ensure account: %w", err)
		}

		balance, err := s.ledger.LockAndGetBalance(tx, userID)
		if err != nil {
			return fmt.Errorf("lock and get balance: %w", err)
		}

		switch action {
		case ActionAdd:
			err = s.ledger.Credit(tx, userID, amount)
			if err != nil {
				return fmt.Errorf("credit balance: %w", err)
			}

			newBalance = balance.Add(amount)

			err = s.ledger.LogTransaction(tx, userID, ledger.TxAdd, amount)

		case ActionSubtract:
			// pre-check against the locked balance
			if balance.LessThan(amount) {
				return fmt.Errorf("pre-check subtract: %w", ledger.ErrInsufficientFunds)
			}

			err = s.ledger.Debit(tx, userID, amount)
			if err != nil {
				return fmt.Errorf("debit balance: %w", err)
			}

			newBalance = balance.Sub(amount)

			err = s.ledger.LogTransaction(tx, userID, ledger.TxSubtract, amount)

		default:
			return fmt.Errorf("invalid action: %s", action)
		}

		if err != nil {
			return fmt.Errorf("log transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("fund balance: %w", err)
	}

	return newBalance, nil
}

// GetBalance returns the user's balance (no locks; suitable for the GET endpoint).
func (s *Service) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	balance, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}
