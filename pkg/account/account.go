// Package account defines the account entity of the ledger engine: a single
// non-negative balance per account, mutated only through Credit and Debit, and
// an analytical query that simulates a from-zero balance history.
//
// All monetary values are shopspring decimals; binary floating point is never
// used for balances. The package is single-threaded by contract: callers that
// share accounts across goroutines must serialize access themselves.
package account

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Account holds a balance for one holder. Instances are created through New
// or Restore so that every id passes through a Registry exactly once.
type Account struct {
	id         string
	holderName string
	balance    decimal.Decimal
	openedAt   time.Time
}

// New creates an account with a zero balance, reserving its id in reg.
func New(reg *Registry, id, holderName string, openedAt time.Time) (*Account, error) {
	if err := reg.Reserve(id); err != nil {
		return nil, err
	}
	return &Account{
		id:         id,
		holderName: holderName,
		balance:    decimal.Zero,
		openedAt:   openedAt,
	}, nil
}

// Restore rebuilds an account from externally persisted state, balance
// included. It is the reconstruction path for serializers; the non-negativity
// invariant still applies.
func Restore(reg *Registry, id, holderName string, openedAt time.Time, balance decimal.Decimal) (*Account, error) {
	if balance.IsNegative() {
		return nil, fmt.Errorf("restore account %q: %w", id, ErrNegativeBalance)
	}
	acc, err := New(reg, id, holderName, openedAt)
	if err != nil {
		return nil, err
	}
	acc.balance = balance
	return acc, nil
}

// ID returns the immutable account id.
func (a *Account) ID() string { return a.id }

// HolderName returns the account holder's name.
func (a *Account) HolderName() string { return a.holderName }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// OpenedAt returns the immutable opening timestamp.
func (a *Account) OpenedAt() time.Time { return a.openedAt }

// Credit adds amount to the balance. The amount must be strictly positive.
func (a *Account) Credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("credit %s: %w", amount, ErrInvalidAmount)
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Debit subtracts amount from the balance. The amount must be strictly
// positive and must not exceed the balance; a failed debit leaves the balance
// untouched.
func (a *Account) Debit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("debit %s: %w", amount, ErrInvalidAmount)
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("debit %s from balance %s: %w", amount, a.balance, ErrInsufficientFunds)
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Entry is the view of a ledger transaction the zero-crossing query needs.
// *ledger.Transaction satisfies it.
type Entry interface {
	AccountID() string
	Amount() decimal.Decimal
	Timestamp() time.Time
	IsEffectuated() bool
}

// EarliestZeroBalanceDate replays this account's effectuated entries in
// chronological order against a simulated balance that starts at zero,
// independent of the real balance, and returns the timestamp of the first
// entry after which the running sum is exactly zero.
//
// Entries belonging to other accounts or still in the future are ignored.
// The sort is stable, so entries sharing a timestamp keep their given order.
func (a *Account) EarliestZeroBalanceDate(entries []Entry) (time.Time, error) {
	var own []Entry
	for _, e := range entries {
		if e.AccountID() == a.id && e.IsEffectuated() {
			own = append(own, e)
		}
	}
	if len(own) == 0 {
		return time.Time{}, fmt.Errorf("account %q: %w", a.id, ErrNoEffectuatedTransactions)
	}

	sort.SliceStable(own, func(i, j int) bool {
		return own[i].Timestamp().Before(own[j].Timestamp())
	})

	simulated := decimal.Zero
	for _, e := range own {
		simulated = simulated.Add(e.Amount())
		if simulated.IsZero() {
			return e.Timestamp(), nil
		}
	}
	return time.Time{}, fmt.Errorf("account %q: %w", a.id, ErrNoZeroCrossing)
}
