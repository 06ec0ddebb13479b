package models

import "github.com/shopspring/decimal"

// AccountSnapshot is the public projection of an account returned to
// clients. It never carries the password. Transactions are ordered
// newest first.
type AccountSnapshot struct {
	Username     string          `json:"username"`
	Balance      decimal.Decimal `json:"balance"`
	IBAN         string          `json:"iban"`
	Transactions []Transaction   `json:"transactions"`
}
