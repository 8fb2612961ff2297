package revenue

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Event is one platform-fee record. The sink is append-only.
type Event struct {
	Source      string
	Amount      decimal.Decimal
	Currency    string
	Description string
	UserID      string
}

type Revenue interface {
	Record(tx *sql.Tx, e Event) error
}
