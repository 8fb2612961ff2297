package ledger

import (
	"database/sql"
	"fmt"

	"github.com/angelmontes7/openplay-wagers/internal/repos/ledger"
	"github.com/shopspring/decimal"
)

func (r *ledgerRepo) LogTransaction(tx *sql.Tx, userID string, kind ledger.TxKind, amount decimal.Decimal) error {
	_, err := tx.Exec(`
		INSERT INTO transactions (user_id, type, amount)
		VALUES ($1, $2, $3)
	`, userID, kind, amount)
	if err != nil {
		return fmt.Errorf("log transaction: %w", err)
	}

	return nil
}
