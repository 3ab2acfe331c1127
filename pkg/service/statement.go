package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MonkeyShock/Banco-Transacoes/pkg/ledger"
)

// Movement is one statement line: a transaction's timestamp and signed amount
// plus the running balance after applying it.
type Movement struct {
	Timestamp time.Time
	Amount    decimal.Decimal
	Balance   decimal.Decimal
}

// Statement is an immutable report of an account over a date range: the
// balance before the range, the effectuated movements inside it with running
// balances, and the balance at the end. Statements are built fresh on each
// request and never persisted.
type Statement struct {
	opening   decimal.Decimal
	movements []Movement
	closing   decimal.Decimal
}

// OpeningBalance returns the balance one day before the range starts.
func (s Statement) OpeningBalance() decimal.Decimal { return s.opening }

// Movements returns a copy of the statement lines.
func (s Statement) Movements() []Movement {
	out := make([]Movement, len(s.movements))
	copy(out, s.movements)
	return out
}

// ClosingBalance returns the account balance at the end of the range.
func (s Statement) ClosingBalance() decimal.Decimal { return s.closing }

// StatementService composes the account directory and the transaction ledger
// into dated statements.
type StatementService struct {
	ledger   *ledger.Ledger
	accounts *AccountService
}

// NewStatementService creates a statement generator over the given ledger and
// account directory.
func NewStatementService(l *ledger.Ledger, accounts *AccountService) *StatementService {
	return &StatementService{ledger: l, accounts: accounts}
}

// BuildStatement produces the statement for one account over [start, end].
//
// The opening balance is read as of one day before start and the closing
// balance as of end; both reads effectuate due transactions as a side effect.
// The opening read must happen first, before the end-of-range sweep applies
// the in-range transactions. Movements are the effectuated transactions inside
// the range, consumed in ledger storage order, with running balances
// accumulated from the opening balance. The closing balance is read from the
// account rather than derived from the running sum, so it reflects whatever
// the ledger actually applied.
func (s *StatementService) BuildStatement(accountID string, start, end time.Time) (Statement, error) {
	opening, err := s.accounts.GetBalance(accountID, start.Add(-24*time.Hour))
	if err != nil {
		return Statement{}, err
	}

	closing, err := s.accounts.GetBalance(accountID, end)
	if err != nil {
		return Statement{}, err
	}

	var movements []Movement
	running := opening
	for _, tx := range s.ledger.FindByPeriod(accountID, start, end, true) {
		running = running.Add(tx.Amount())
		movements = append(movements, Movement{
			Timestamp: tx.Timestamp(),
			Amount:    tx.Amount(),
			Balance:   running,
		})
	}

	return Statement{opening: opening, movements: movements, closing: closing}, nil
}
