// Package service provides the account-level read operations and the
// statement generator that sit on top of the account directory and the
// transaction ledger.
package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/MonkeyShock/Banco-Transacoes/pkg/account"
	"github.com/MonkeyShock/Banco-Transacoes/pkg/ledger"
)

// AccountService owns every account, keyed by id, together with the id
// registry that enforces uniqueness. The registry is the only uniqueness
// authority; the map is a derived index and never disagrees with it.
type AccountService struct {
	registry *account.Registry
	accounts map[string]*account.Account
	ledger   *ledger.Ledger
	log      zerolog.Logger
}

// NewAccountService creates a directory backed by the given registry.
// UseLedger must be called before any balance read.
func NewAccountService(registry *account.Registry, log zerolog.Logger) *AccountService {
	return &AccountService{
		registry: registry,
		accounts: make(map[string]*account.Account),
		log:      log,
	}
}

// UseLedger wires in the transaction ledger the service reads through. The
// ledger itself is constructed with this service's Lookup capability, so the
// two are bound after both exist.
func (s *AccountService) UseLedger(l *ledger.Ledger) {
	s.ledger = l
}

// Lookup is the account-lookup capability handed to the ledger. It resolves
// ids against the directory's own map.
func (s *AccountService) Lookup(id string) (*account.Account, bool) {
	acc, ok := s.accounts[id]
	if !ok {
		return nil, false
	}
	return acc, true
}

// CreateAccount creates and stores a new account with a zero balance. The id
// must be unused; account.New reserves it in the shared registry.
func (s *AccountService) CreateAccount(id, holderName string, openedAt time.Time) (*account.Account, error) {
	acc, err := account.New(s.registry, id, holderName, openedAt)
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	s.accounts[id] = acc
	return acc, nil
}

// RestoreAccount adopts an account rebuilt by a deserializer. The account
// already holds a registry reservation from account.Restore.
func (s *AccountService) RestoreAccount(acc *account.Account) {
	s.accounts[acc.ID()] = acc
}

// GetAccount returns the account with the given id.
func (s *AccountService) GetAccount(id string) (*account.Account, error) {
	acc, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %q: %w", id, ledger.ErrAccountNotFound)
	}
	return acc, nil
}

// GetBalance effectuates every transaction due at or before asOf and then
// returns the account's balance. This is a side-effecting read: it advances
// ledger and account state for all accounts, not just the requested one.
// Sweep failures are reported on the service logger and do not fail the read.
func (s *AccountService) GetBalance(id string, asOf time.Time) (decimal.Decimal, error) {
	acc, err := s.GetAccount(id)
	if err != nil {
		return decimal.Zero, err
	}
	for _, failure := range s.ledger.EffectuateUntil(asOf) {
		s.log.Warn().
			Str("transaction_id", failure.TransactionID).
			Str("account_id", failure.AccountID).
			Err(failure.Err).
			Msg("transaction left future during balance read")
	}
	return acc.Balance(), nil
}

// GetTotal sums the amounts of the account's effectuated transactions inside
// [start, end], both ends inclusive. It never mutates ledger state.
func (s *AccountService) GetTotal(id string, start, end time.Time) (decimal.Decimal, error) {
	if _, err := s.GetAccount(id); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, tx := range s.ledger.FindByPeriod(id, start, end, true) {
		total = total.Add(tx.Amount())
	}
	return total, nil
}

// Accounts returns all accounts sorted by id.
func (s *AccountService) Accounts() []*account.Account {
	out := make([]*account.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		out = append(out, acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}
