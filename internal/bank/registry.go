package bank

import (
	"strings"
	"sync"
	"time"

	"github.com/abank-demo/abank-be/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RegistryProvider defines the account operations the HTTP layer needs.
type RegistryProvider interface {
	Register(username, password string) (models.AccountSnapshot, error)
	Authenticate(username, password string) (models.AccountSnapshot, error)
	Get(username string) (models.AccountSnapshot, error)
	Stats() models.RegistryStats
}

// openingNote labels the zero-amount entry written when an account is
// created.
const openingNote = "Account opened"

var startingBalance = decimal.RequireFromString("1500.00")

// Registry owns the authoritative set of accounts, keyed by normalized
// (trimmed, lowercased) username. It lives only in process memory and is
// rebuilt from the seed accounts on every start.
type Registry struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{accounts: make(map[string]*Account)}
}

func normalizeKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Register creates a new account with the starting balance, a generated
// IBAN and an opening transaction. The existence check and the insert
// happen under one lock, so concurrent registrations of the same
// normalized username produce exactly one winner.
func (r *Registry) Register(username, password string) (models.AccountSnapshot, error) {
	name := strings.TrimSpace(username)
	if name == "" || strings.TrimSpace(password) == "" {
		return models.AccountSnapshot{}, ErrInvalidInput
	}
	key := strings.ToLower(name)

	account := &Account{
		Username: name,
		Password: password,
		Balance:  startingBalance,
		IBAN:     BuildIBAN(),
		Transactions: []models.Transaction{{
			ID:     uuid.New().String(),
			Note:   openingNote,
			Amount: decimal.Zero,
			Date:   time.Now(),
		}},
	}

	r.mu.Lock()
	if _, exists := r.accounts[key]; exists {
		r.mu.Unlock()
		return models.AccountSnapshot{}, ErrDuplicateUsername
	}
	r.accounts[key] = account
	r.mu.Unlock()

	log.Info().Str("username", name).Msg("Registered new account")
	return account.Snapshot(), nil
}

// Authenticate looks up the account and compares the password exactly.
// Absent users and wrong passwords are indistinguishable to the caller.
func (r *Registry) Authenticate(username, password string) (models.AccountSnapshot, error) {
	account, err := r.lookup(username)
	if err != nil || account.Password != password {
		return models.AccountSnapshot{}, ErrInvalidCredentials
	}
	return account.Snapshot(), nil
}

// Get returns the current snapshot for a username.
func (r *Registry) Get(username string) (models.AccountSnapshot, error) {
	account, err := r.lookup(username)
	if err != nil {
		return models.AccountSnapshot{}, err
	}
	return account.Snapshot(), nil
}

// lookup returns the internal record. Only this package may mutate it.
func (r *Registry) lookup(username string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.accounts[normalizeKey(username)]
	if !ok {
		return nil, ErrNotFound
	}
	return account, nil
}

// Seed preloads a demo account at process start. It is not reachable from
// any route and silently keeps the first entry on a key collision.
func (r *Registry) Seed(username, password string, balance decimal.Decimal, iban string) {
	key := normalizeKey(username)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.accounts[key]; exists {
		return
	}
	r.accounts[key] = &Account{
		Username: strings.TrimSpace(username),
		Password: password,
		Balance:  balance,
		IBAN:     iban,
		Transactions: []models.Transaction{{
			ID:     uuid.New().String(),
			Note:   openingNote,
			Amount: decimal.Zero,
			Date:   time.Now(),
		}},
	}
}

// Stats totals the registry for the stats endpoint and the background
// reporter.
func (r *Registry) Stats() models.RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := models.RegistryStats{TotalBalance: decimal.Zero}
	for _, account := range r.accounts {
		account.mu.Lock()
		stats.Accounts++
		stats.Transactions += len(account.Transactions)
		stats.TotalBalance = stats.TotalBalance.Add(account.Balance)
		account.mu.Unlock()
	}
	return stats
}
