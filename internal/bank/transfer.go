package bank

import (
	"context"
	"strings"
	"time"

	"github.com/abank-demo/abank-be/internal/events"
	"github.com/abank-demo/abank-be/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransferProvider defines the transfer operation exposed to handlers.
type TransferProvider interface {
	Transfer(ctx context.Context, username, toIBAN string, amount decimal.Decimal, note string) (models.AccountSnapshot, error)
}

// DefaultNote is recorded when a transfer request carries no note.
const DefaultNote = "Money transfer"

// DefaultMinIBANLength is the loosest accepted destination length; strict
// deployments may raise it to 10 via configuration.
const DefaultMinIBANLength = 8

// TransferService validates and applies outgoing transfers against a
// single account. The balance check and the debit happen under that
// account's own mutex, so transfers on different accounts never contend
// and transfers on the same account serialize. The destination IBAN is
// checked for shape only; no credit is ever applied to it.
type TransferService struct {
	registry   *Registry
	publisher  events.Publisher
	minIBANLen int
}

// NewTransferService creates a TransferService. A non-positive minIBANLen
// falls back to the default.
func NewTransferService(registry *Registry, publisher events.Publisher, minIBANLen int) *TransferService {
	if minIBANLen <= 0 {
		minIBANLen = DefaultMinIBANLength
	}
	return &TransferService{
		registry:   registry,
		publisher:  publisher,
		minIBANLen: minIBANLen,
	}
}

// Transfer debits amount from the named account and appends a transaction.
// Checks run in order and short-circuit: account existence, destination
// shape, amount positivity, then — under the account lock — sufficient
// balance. A rejection at any step leaves the account untouched.
func (s *TransferService) Transfer(ctx context.Context, username, toIBAN string, amount decimal.Decimal, note string) (models.AccountSnapshot, error) {
	account, err := s.registry.lookup(username)
	if err != nil {
		return models.AccountSnapshot{}, err
	}

	destination := strings.TrimSpace(toIBAN)
	if len(destination) < s.minIBANLen {
		return models.AccountSnapshot{}, ErrInvalidDestination
	}
	if amount.Cmp(decimal.Zero) <= 0 {
		return models.AccountSnapshot{}, ErrInvalidAmount
	}

	note = strings.TrimSpace(note)
	if note == "" {
		note = DefaultNote
	}

	account.mu.Lock()
	if amount.Cmp(account.Balance) > 0 {
		account.mu.Unlock()
		return models.AccountSnapshot{}, ErrInsufficientFunds
	}
	tx := models.Transaction{
		ID:     uuid.New().String(),
		Note:   note,
		Amount: amount,
		Date:   time.Now(),
	}
	account.Balance = account.Balance.Sub(amount)
	account.Transactions = append(account.Transactions, tx)
	snapshot := account.snapshotLocked()
	account.mu.Unlock()

	log.Info().
		Str("username", snapshot.Username).
		Str("to_iban", destination).
		Str("amount", amount.String()).
		Msg("Transfer applied")

	// Best effort: a failed publish never fails a committed transfer.
	event := events.TransferCompleted{
		TransactionID: tx.ID,
		Username:      snapshot.Username,
		ToIBAN:        destination,
		Amount:        amount,
		OccurredAt:    tx.Date,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("transaction_id", tx.ID).Msg("Failed to publish transfer event")
	}

	return snapshot, nil
}
