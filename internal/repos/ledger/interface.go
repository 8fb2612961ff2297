package ledger

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAccountNotFound   = errors.New("balance account not found")
)

// TxKind labels an entry in the append-only transaction log.
type TxKind string

const (
	TxAdd         TxKind = "add"
	TxSubtract    TxKind = "subtract"
	TxWager       TxKind = "wager"
	TxWagerWin    TxKind = "wager_win"
	TxWagerRefund TxKind = "wager_refund"
)

type Ledger interface {
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)
	// LockAndGetBalance locks the balance row FOR UPDATE for the duration
	// of the transaction.
	LockAndGetBalance(tx *sql.Tx, userID string) (decimal.Decimal, error)
	// EnsureAccount creates a zero balance row if the user has none yet.
	EnsureAccount(tx *sql.Tx, userID string) error
	Credit(tx *sql.Tx, userID string, amount decimal.Decimal) error
	// Debit fails with ErrInsufficientFunds when the balance cannot cover amount.
	Debit(tx *sql.Tx, userID string, amount decimal.Decimal) error
	LogTransaction(tx *sql.Tx, userID string, kind TxKind, amount decimal.Decimal) error
}
