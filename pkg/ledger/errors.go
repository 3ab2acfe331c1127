package ledger

import "errors"

var (
	// ErrEmptyTransactionID means a transaction id was empty or blank.
	ErrEmptyTransactionID = errors.New("transaction id must not be empty")

	// ErrEmptyAccountID means a transaction referenced no account.
	ErrEmptyAccountID = errors.New("transaction account id must not be empty")

	// ErrZeroAmount means a transaction amount was zero; amounts are signed
	// and must move the balance in one direction or the other.
	ErrZeroAmount = errors.New("transaction amount must not be zero")

	// ErrInvalidStatus means a status string was neither FUTURA nor EFETIVADA.
	ErrInvalidStatus = errors.New("invalid transaction status")

	// ErrDuplicateTransactionID means the id collides with a stored
	// transaction anywhere in the ledger, not just on the same account.
	ErrDuplicateTransactionID = errors.New("transaction id already in ledger")

	// ErrAccountNotFound means the lookup capability produced no account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound means no stored transaction has the given id.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPrecedesOpening means the transaction is dated before the owning
	// account was opened.
	ErrPrecedesOpening = errors.New("transaction precedes account opening")
)
