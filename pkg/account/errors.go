package account

import "errors"

var (
	// ErrEmptyID means an account id was empty or blank.
	ErrEmptyID = errors.New("account id must not be empty")

	// ErrDuplicateID means the id is already reserved in the registry.
	ErrDuplicateID = errors.New("account id already in use")

	// ErrInvalidAmount means a credit or debit amount was not strictly positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds means a debit would drive the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNegativeBalance means a restored balance was negative.
	ErrNegativeBalance = errors.New("balance must not be negative")

	// ErrNoEffectuatedTransactions means the zero-crossing query has no
	// effectuated transactions to simulate.
	ErrNoEffectuatedTransactions = errors.New("no effectuated transactions for account")

	// ErrNoZeroCrossing means the simulated running balance never returns
	// to exactly zero.
	ErrNoZeroCrossing = errors.New("simulated balance never returns to zero")
)
