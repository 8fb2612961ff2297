package revenue

import (
	"database/sql"
	"fmt"

	"github.com/angelmontes7/openplay-wagers/internal/repos/revenue"
)

var _ revenue.Revenue = (*revenueRepo)(nil)

type revenueRepo struct{ db *sql.DB }

func New(db *sql.DB) *revenueRepo {
	return &revenueRepo{db: db}
}

func (r *revenueRepo) Record(tx *sql.Tx, e revenue.Event) error {
	currency := e.Currency
	if currency == "" {
		currency = "USD"
	}

	_, err := tx.Exec(`
		INSERT INTO company_revenue (source, amount, currency, description, user_clerk_id)
		VALUES ($1, $2, $3, $4, $5)
	`, e.Source, e.Amount, currency, e.Description, e.UserID)
	if err != nil {
		return fmt.Errorf("record revenue: %w", err)
	}

	return nil
}
