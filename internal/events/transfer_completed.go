package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferCompleted is emitted after a debit has been committed to an
// account.
type TransferCompleted struct {
	TransactionID string          `json:"transactionId"`
	Username      string          `json:"username"`
	ToIBAN        string          `json:"toIban"`
	Amount        decimal.Decimal `json:"amount"`
	OccurredAt    time.Time       `json:"occurredAt"`
}
