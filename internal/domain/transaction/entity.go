package domain_transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a read-only ledger row owned by the remote service.
type Transaction struct {
	ID      int64
	Account string
	Amount  decimal.Decimal
	Date    time.Time
}

// Equal compares two rows, treating amounts numerically.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Account == o.Account &&
		t.Amount.Equal(o.Amount) &&
		t.Date.Equal(o.Date)
}
