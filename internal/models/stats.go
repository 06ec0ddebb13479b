package models

import "github.com/shopspring/decimal"

// RegistryStats summarizes the in-memory registry for the stats endpoint
// and the background reporter.
type RegistryStats struct {
	Accounts     int             `json:"accounts"`
	Transactions int             `json:"transactions"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
}
