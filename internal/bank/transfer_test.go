package bank

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/abank-demo/abank-be/internal/events"
	"github.com/shopspring/decimal"
)

func newTestTransferService(t *testing.T) (*Registry, *TransferService) {
	t.Helper()
	registry := NewRegistry()
	service := NewTransferService(registry, events.NopPublisher{}, 0)
	return registry, service
}

func TestTransferHappyPath(t *testing.T) {
	registry, service := newTestTransferService(t)
	if _, err := registry.Register("alice", "pw1"); err != nil {
		t.Fatal(err)
	}

	account, err := service.Transfer(context.Background(), "alice", "TR000000001", decimal.NewFromInt(500), "rent")
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("balance = %s, want 1000", account.Balance)
	}

	// Newest first: the debit, then the opening entry.
	if len(account.Transactions) != 2 {
		t.Fatalf("transactions len = %d, want 2", len(account.Transactions))
	}
	if account.Transactions[0].Note != "rent" || !account.Transactions[0].Amount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("newest transaction = %+v, want rent/500", account.Transactions[0])
	}
	if !account.Transactions[1].Amount.IsZero() {
		t.Errorf("oldest transaction should be the zero-amount opening entry, got %+v", account.Transactions[1])
	}
}

func TestTransferDefaultNote(t *testing.T) {
	registry, service := newTestTransferService(t)
	if _, err := registry.Register("alice", "pw1"); err != nil {
		t.Fatal(err)
	}

	account, err := service.Transfer(context.Background(), "alice", "TR000000001", decimal.NewFromInt(1), "   ")
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if account.Transactions[0].Note != DefaultNote {
		t.Errorf("note = %q, want default %q", account.Transactions[0].Note, DefaultNote)
	}
}

func TestTransferUnknownAccount(t *testing.T) {
	_, service := newTestTransferService(t)

	if _, err := service.Transfer(context.Background(), "nobody", "TR000000001", decimal.NewFromInt(10), ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestTransferShortDestination(t *testing.T) {
	registry, service := newTestTransferService(t)
	if _, err := registry.Register("alice", "pw1"); err != nil {
		t.Fatal(err)
	}

	for _, iban := range []string{"", "TR1", "  TR12345  "} {
		if _, err := service.Transfer(context.Background(), "alice", iban, decimal.NewFromInt(10), ""); !errors.Is(err, ErrInvalidDestination) {
			t.Errorf("iban %q err = %v, want ErrInvalidDestination", iban, err)
		}
	}

	// A stricter threshold rejects what the default accepts.
	strict := NewTransferService(registry, events.NopPublisher{}, 10)
	if _, err := strict.Transfer(context.Background(), "alice", "TR1234567", decimal.NewFromInt(10), ""); !errors.Is(err, ErrInvalidDestination) {
		t.Errorf("strict threshold err = %v, want ErrInvalidDestination", err)
	}
}

func TestTransferNonPositiveAmount(t *testing.T) {
	registry, service := newTestTransferService(t)
	if _, err := registry.Register("alice", "pw1"); err != nil {
		t.Fatal(err)
	}

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		if _, err := service.Transfer(context.Background(), "alice", "TR000000001", amount, ""); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("amount %s err = %v, want ErrInvalidAmount", amount, err)
		}
	}

	// Rejections leave state untouched.
	account, _ := registry.Get("alice")
	if !account.Balance.Equal(decimal.RequireFromString("1500.00")) {
		t.Errorf("balance changed to %s after rejected transfers", account.Balance)
	}
	if len(account.Transactions) != 1 {
		t.Errorf("transactions len = %d, want only the opening entry", len(account.Transactions))
	}
}

func TestTransferInsufficientFunds(t *testing.T) {
	registry, service := newTestTransferService(t)
	if _, err := registry.Register("alice", "pw1"); err != nil {
		t.Fatal(err)
	}

	if _, err := service.Transfer(context.Background(), "alice", "TR000000001", decimal.NewFromInt(2000), ""); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}

	account, _ := registry.Get("alice")
	if !account.Balance.Equal(decimal.RequireFromString("1500.00")) {
		t.Errorf("balance = %s, want unchanged 1500.00", account.Balance)
	}
	if len(account.Transactions) != 1 {
		t.Errorf("transactions len = %d, want only the opening entry", len(account.Transactions))
	}
}

// Concurrent transfers of 100 and 200 against a balance of 250: exactly
// one succeeds regardless of scheduling, and the final balance matches
// whichever one it was.
func TestTransferConcurrentCheckAndDebit(t *testing.T) {
	registry := NewRegistry()
	service := NewTransferService(registry, events.NopPublisher{}, 0)
	registry.Seed("carol", "pw", decimal.NewFromInt(250), "TR11 1111 1111 1111")

	amounts := []int64{100, 200}
	errs := make([]error, len(amounts))

	var wg sync.WaitGroup
	wg.Add(len(amounts))
	for i, amount := range amounts {
		go func(i int, amount int64) {
			defer wg.Done()
			_, errs[i] = service.Transfer(context.Background(), "carol", "TR000000001", decimal.NewFromInt(amount), "")
		}(i, amount)
	}
	wg.Wait()

	var succeeded []int64
	for i, err := range errs {
		switch {
		case err == nil:
			succeeded = append(succeeded, amounts[i])
		case errors.Is(err, ErrInsufficientFunds):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(succeeded) != 1 {
		t.Fatalf("succeeded = %v, want exactly one", succeeded)
	}

	account, _ := registry.Get("carol")
	want := decimal.NewFromInt(250 - succeeded[0])
	if !account.Balance.Equal(want) {
		t.Fatalf("balance = %s, want %s", account.Balance, want)
	}
	if len(account.Transactions) != 2 {
		t.Fatalf("transactions len = %d, want opening entry plus one debit", len(account.Transactions))
	}
}

// Transfers on the same account serialize but never lose a debit.
func TestTransferConcurrentSameAccount(t *testing.T) {
	registry := NewRegistry()
	service := NewTransferService(registry, events.NopPublisher{}, 0)
	registry.Seed("dave", "pw", decimal.NewFromInt(1000), "TR22 2222 2222 2222")

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := service.Transfer(context.Background(), "dave", "TR000000001", decimal.NewFromInt(1), ""); err != nil {
				t.Errorf("Transfer: %v", err)
			}
		}()
	}
	wg.Wait()

	account, _ := registry.Get("dave")
	if !account.Balance.Equal(decimal.NewFromInt(1000 - n)) {
		t.Fatalf("balance = %s, want %d", account.Balance, 1000-n)
	}
	if len(account.Transactions) != n+1 {
		t.Fatalf("transactions len = %d, want %d", len(account.Transactions), n+1)
	}
}

// Transfers on different accounts proceed independently.
func TestTransferConcurrentDistinctAccounts(t *testing.T) {
	registry := NewRegistry()
	service := NewTransferService(registry, events.NopPublisher{}, 0)
	registry.Seed("erin", "pw", decimal.NewFromInt(500), "TR33 3333 3333 3333")
	registry.Seed("frank", "pw", decimal.NewFromInt(500), "TR44 4444 4444 4444")

	const n = 50
	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		for _, name := range []string{"erin", "frank"} {
			go func(name string) {
				defer wg.Done()
				if _, err := service.Transfer(context.Background(), name, "TR000000001", decimal.NewFromInt(2), ""); err != nil {
					t.Errorf("%s: %v", name, err)
				}
			}(name)
		}
	}
	wg.Wait()

	for _, name := range []string{"erin", "frank"} {
		account, _ := registry.Get(name)
		if !account.Balance.Equal(decimal.NewFromInt(500 - 2*n)) {
			t.Errorf("%s balance = %s, want %d", name, account.Balance, 500-2*n)
		}
	}
}
