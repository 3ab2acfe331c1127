// Package ledger owns the system-wide, insertion-ordered list of transactions
// and the effectuation sweep that applies scheduled amounts to account
// balances. It reaches accounts only through an injected lookup capability and
// never keeps an account map of its own, so account existence has a single
// source of truth.
//
// Like the rest of the engine, a Ledger is not safe for concurrent use.
package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/MonkeyShock/Banco-Transacoes/pkg/account"
)

// LookupFunc resolves an account id to the owning account. The second return
// is false when no such account exists.
type LookupFunc func(accountID string) (*account.Account, bool)

// SweepFailure reports one transaction the effectuation sweep could not apply.
// The transaction stays Future and will be retried on the next sweep.
type SweepFailure struct {
	TransactionID string
	AccountID     string
	Err           error
}

// Ledger stores every transaction across all accounts in insertion order.
type Ledger struct {
	transactions []*Transaction
	lookup       LookupFunc
	log          zerolog.Logger
}

// New creates an empty ledger. The lookup capability is mandatory; the logger
// is the side channel on which sweep failures are reported.
func New(lookup LookupFunc, log zerolog.Logger) *Ledger {
	return &Ledger{lookup: lookup, log: log}
}

// Add validates and appends a transaction with its status as constructed.
// The id must be unique across the whole ledger, the account must exist, and
// the timestamp must not precede the account's opening date.
func (l *Ledger) Add(tx *Transaction) error {
	for _, existing := range l.transactions {
		if existing.ID() == tx.ID() {
			return fmt.Errorf("add transaction %q: %w", tx.ID(), ErrDuplicateTransactionID)
		}
	}
	acc, ok := l.lookup(tx.AccountID())
	if !ok {
		return fmt.Errorf("add transaction %q: account %q: %w", tx.ID(), tx.AccountID(), ErrAccountNotFound)
	}
	if tx.Timestamp().Before(acc.OpenedAt()) {
		return fmt.Errorf("add transaction %q: %w", tx.ID(), ErrPrecedesOpening)
	}
	l.transactions = append(l.transactions, tx)
	return nil
}

// Remove deletes a transaction by id. If the transaction was already
// effectuated its balance effect is reversed first: a prior credit is debited
// back, a prior debit credited back. When the reversal fails the transaction
// is left in the ledger untouched, so removal is atomic.
func (l *Ledger) Remove(txID string) error {
	idx := -1
	for i, tx := range l.transactions {
		if tx.ID() == txID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("remove transaction %q: %w", txID, ErrTransactionNotFound)
	}

	tx := l.transactions[idx]
	if tx.IsEffectuated() {
		acc, ok := l.lookup(tx.AccountID())
		if !ok {
			return fmt.Errorf("remove transaction %q: account %q: %w", txID, tx.AccountID(), ErrAccountNotFound)
		}
		if err := l.reverse(acc, tx); err != nil {
			return fmt.Errorf("remove transaction %q: reversal: %w", txID, err)
		}
	}

	l.transactions = append(l.transactions[:idx], l.transactions[idx+1:]...)
	return nil
}

func (l *Ledger) reverse(acc *account.Account, tx *Transaction) error {
	if tx.Amount().IsPositive() {
		return acc.Debit(tx.Amount())
	}
	return acc.Credit(tx.Amount().Neg())
}

// FindByPeriod returns the transactions of one account whose timestamps fall
// inside [start, end], both ends inclusive, optionally restricted to
// effectuated ones. The result keeps storage order, which is insertion order,
// not necessarily chronological.
func (l *Ledger) FindByPeriod(accountID string, start, end time.Time, effectuatedOnly bool) []*Transaction {
	var result []*Transaction
	for _, tx := range l.transactions {
		if tx.AccountID() != accountID {
			continue
		}
		if tx.Timestamp().Before(start) || tx.Timestamp().After(end) {
			continue
		}
		if effectuatedOnly && !tx.IsEffectuated() {
			continue
		}
		result = append(result, tx)
	}
	return result
}

// EffectuateUntil applies every Future transaction dated at or before cutoff:
// the signed amount is credited or debited on the owning account and the
// transaction transitions to Effectuated.
//
// Due transactions are applied in timestamp order, stable across equal
// timestamps, so a credit scheduled before a debit funds it even when it was
// inserted later. Each transaction is applied independently: a failure leaves
// that transaction Future, is logged, and is returned, while the remaining due
// transactions are still attempted. Repeating a sweep with the same cutoff is
// idempotent apart from retrying previously failed applications.
func (l *Ledger) EffectuateUntil(cutoff time.Time) []SweepFailure {
	var due []*Transaction
	for _, tx := range l.transactions {
		if tx.IsFuture() && !tx.Timestamp().After(cutoff) {
			due = append(due, tx)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Timestamp().Before(due[j].Timestamp())
	})

	var failures []SweepFailure
	for _, tx := range due {
		if err := l.apply(tx); err != nil {
			l.log.Warn().
				Str("transaction_id", tx.ID()).
				Str("account_id", tx.AccountID()).
				Str("amount", tx.Amount().String()).
				Err(err).
				Msg("effectuation skipped")
			failures = append(failures, SweepFailure{
				TransactionID: tx.ID(),
				AccountID:     tx.AccountID(),
				Err:           err,
			})
			continue
		}
		tx.markEffectuated()
	}
	return failures
}

func (l *Ledger) apply(tx *Transaction) error {
	acc, ok := l.lookup(tx.AccountID())
	if !ok {
		return fmt.Errorf("account %q: %w", tx.AccountID(), ErrAccountNotFound)
	}
	if tx.Amount().IsPositive() {
		return acc.Credit(tx.Amount())
	}
	return acc.Debit(tx.Amount().Neg())
}

// Transactions returns a copy of the full list in storage order.
func (l *Ledger) Transactions() []*Transaction {
	out := make([]*Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Entries returns the full list as zero-crossing query entries.
func (l *Ledger) Entries() []account.Entry {
	out := make([]account.Entry, len(l.transactions))
	for i, tx := range l.transactions {
		out[i] = tx
	}
	return out
}

// Len returns the number of stored transactions.
func (l *Ledger) Len() int {
	return len(l.transactions)
}
