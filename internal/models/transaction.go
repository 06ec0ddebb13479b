package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single immutable entry in an account's history. Amount
// is the debited value; it is zero only for the opening entry.
type Transaction struct {
	ID     string          `json:"id"`
	Note   string          `json:"note"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}
