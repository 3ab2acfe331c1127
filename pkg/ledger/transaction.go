package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a transaction. The values double as the
// CSV wire form, so they keep the original Portuguese spelling.
type Status string

const (
	// StatusFuture marks a transaction that is scheduled but not yet applied.
	StatusFuture Status = "FUTURA"
	// StatusEffectuated marks a transaction whose amount has been applied to
	// the owning account's balance.
	StatusEffectuated Status = "EFETIVADA"
)

// ParseStatus converts a wire string into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusFuture, StatusEffectuated:
		return Status(s), nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrInvalidStatus)
	}
}

// Transaction is a dated, signed monetary entry referencing one account.
// A positive amount is a credit, a negative amount a debit. Fields are
// immutable after construction except for the Future → Effectuated status
// transition, which only the ledger sweep performs.
type Transaction struct {
	id        string
	accountID string
	amount    decimal.Decimal
	timestamp time.Time
	status    Status
}

// NewTransaction creates a transaction in the Future state.
func NewTransaction(id, accountID string, amount decimal.Decimal, timestamp time.Time) (*Transaction, error) {
	return NewTransactionWithStatus(id, accountID, amount, timestamp, StatusFuture)
}

// NewTransactionWithStatus creates a transaction in an explicit state. It is
// the reconstruction path for serializers that reload effectuated history.
func NewTransactionWithStatus(id, accountID string, amount decimal.Decimal, timestamp time.Time, status Status) (*Transaction, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyTransactionID
	}
	if strings.TrimSpace(accountID) == "" {
		return nil, fmt.Errorf("transaction %q: %w", id, ErrEmptyAccountID)
	}
	if amount.IsZero() {
		return nil, fmt.Errorf("transaction %q: %w", id, ErrZeroAmount)
	}
	if status != StatusFuture && status != StatusEffectuated {
		return nil, fmt.Errorf("transaction %q: %q: %w", id, status, ErrInvalidStatus)
	}
	return &Transaction{
		id:        id,
		accountID: accountID,
		amount:    amount,
		timestamp: timestamp,
		status:    status,
	}, nil
}

// ID returns the ledger-wide unique transaction id.
func (t *Transaction) ID() string { return t.id }

// AccountID returns the id of the owning account.
func (t *Transaction) AccountID() string { return t.accountID }

// Amount returns the signed amount: positive credits, negative debits.
func (t *Transaction) Amount() decimal.Decimal { return t.amount }

// Timestamp returns when the transaction takes effect.
func (t *Transaction) Timestamp() time.Time { return t.timestamp }

// Status returns the current lifecycle state.
func (t *Transaction) Status() Status { return t.status }

// IsFuture reports whether the transaction is still scheduled.
func (t *Transaction) IsFuture() bool { return t.status == StatusFuture }

// IsEffectuated reports whether the amount has been applied.
func (t *Transaction) IsEffectuated() bool { return t.status == StatusEffectuated }

func (t *Transaction) markEffectuated() { t.status = StatusEffectuated }
