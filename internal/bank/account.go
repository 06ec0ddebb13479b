package bank

import (
	"sync"

	"github.com/abank-demo/abank-be/internal/models"
	"github.com/shopspring/decimal"
)

// Account is the registry's internal record for a single user. Username
// and IBAN are immutable after creation; balance and the transaction list
// may only change while holding mu. The password is stored verbatim and
// compared with exact equality (demo posture, no hashing).
type Account struct {
	mu           sync.Mutex
	Username     string
	Password     string
	Balance      decimal.Decimal
	IBAN         string
	Transactions []models.Transaction // append-only, oldest first
}

// Snapshot returns a copy of the account's public fields with the
// transaction history reversed to newest-first order.
func (a *Account) Snapshot() models.AccountSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

// snapshotLocked requires a.mu to be held.
func (a *Account) snapshotLocked() models.AccountSnapshot {
	txs := make([]models.Transaction, len(a.Transactions))
	for i, tx := range a.Transactions {
		txs[len(a.Transactions)-1-i] = tx
	}
	return models.AccountSnapshot{
		Username:     a.Username,
		Balance:      a.Balance,
		IBAN:         a.IBAN,
		Transactions: txs,
	}
}
