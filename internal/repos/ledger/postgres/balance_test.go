package ledger

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/angelmontes7/openplay-wagers/internal/infra/pgtestutil"
	"github.com/angelmontes7/openplay-wagers/internal/repos/ledger"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func inTx(t *testing.T, db *sql.DB, fn func(tx *sql.Tx) error) error {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}

	err = fn(tx)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	cerr := tx.Commit()
	if cerr != nil {
		t.Fatalf("commit: %v", cerr)
	}

	return nil
}

func TestLedger_DebitAndCredit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		seedBalance string
		run         func(repo *ledgerRepo, tx *sql.Tx) error
		wantErr     error
		wantBalance string
	}{
		{
			name:        "debit within balance",
			seedBalance: "50.00",
			run: func(repo *ledgerRepo, tx *sql.Tx) error {
				return repo.Debit(tx, "u1", dec("20.00"))
			},
			wantBalance: "30.00",
		},
		{
			name:        "debit more than balance",
			seedBalance: "10.00",
			run: func(repo *ledgerRepo, tx *sql.Tx) error {
				return repo.Debit(tx, "u1", dec("20.00"))
			},
			wantErr:     ledger.ErrInsufficientFunds,
			wantBalance: "10.00",
		},
		{
			name:        "debit exact balance",
			seedBalance: "20.00",
			run: func(repo *ledgerRepo, tx *sql.Tx) error {
				return repo.Debit(tx, "u1", dec("20.00"))
			},
			wantBalance: "0.00",
		},
		{
			name:        "credit",
			seedBalance: "5.50",
			run: func(repo *ledgerRepo, tx *sql.Tx) error {
				return repo.Credit(tx, "u1", dec("4.50"))
			},
			wantBalance: "10.00",
		},
		{
			name:        "credit unknown account",
			seedBalance: "",
			run: func(repo *ledgerRepo, tx *sql.Tx) error {
				return repo.Credit(tx, "u1", dec("4.50"))
			},
			wantErr: ledger.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, cleanup := pgtestutil.NewTestDB(t)
			defer cleanup()

			if tt.seedBalance != "" {
				_, err := db.Exec(`INSERT INTO balances (user_id, balance) VALUES ('u1', $1)`, tt.seedBalance)
				if err != nil {
					t.Fatalf("seed: %v", err)
				}
			}

			repo := New(db)

			err := inTx(t, db, func(tx *sql.Tx) error {
				return tt.run(repo, tx)
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want %v, got %v", tt.wantErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.wantBalance != "" {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				bal, gerr := repo.GetBalance(ctx, "u1")
				if gerr != nil {
					t.Fatalf("get balance: %v", gerr)
				}
				if bal.StringFixed(2) != tt.wantBalance {
					t.Fatalf("balance: want %s, got %s", tt.wantBalance, bal.StringFixed(2))
				}
			}
		})
	}
}

func TestLedger_EnsureAccount(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	repo := New(db)

	err := inTx(t, db, func(tx *sql.Tx) error {
		return repo.EnsureAccount(tx, "u9")
	})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}

	// idempotent: a second call must not reset or duplicate the row
	err = inTx(t, db, func(tx *sql.Tx) error {
		if cerr := repo.Credit(tx, "u9", dec("7.00")); cerr != nil {
			return cerr
		}
		return repo.EnsureAccount(tx, "u9")
	})
	if err != nil {
		t.Fatalf("credit + re-ensure: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	bal, err := repo.GetBalance(ctx, "u9")
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if bal.StringFixed(2) != "7.00" {
		t.Fatalf("balance: want 7.00, got %s", bal.StringFixed(2))
	}
}

func TestLedger_GetBalance_UnknownAccount(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	repo := New(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.GetBalance(ctx, "missing")
	if !errors.Is(err, ledger.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}

func TestLedger_LogTransaction(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	repo := New(db)

	err := inTx(t, db, func(tx *sql.Tx) error {
		return repo.LogTransaction(tx, "u1", ledger.TxWagerWin, dec("39.60"))
	})
	if err != nil {
		t.Fatalf("log: %v", err)
	}

	var (
		kind   string
		amount decimal.Decimal
	)
	err = db.QueryRow(`SELECT type, amount FROM transactions WHERE user_id = 'u1'`).Scan(&kind, &amount)
	if err != nil {
		t.Fatalf("read transaction: %v", err)
	}
	if kind != "wager_win" || amount.StringFixed(2) != "39.60" {
		t.Fatalf("transaction: got %s %s", kind, amount.StringFixed(2))
	}
}
