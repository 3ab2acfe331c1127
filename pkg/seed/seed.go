// Package seed loads YAML demo scenarios and replays them against a live
// account directory and ledger. Scenarios replace hand-written wiring code
// when exercising the engine end to end.
package seed

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/MonkeyShock/Banco-Transacoes/pkg/ledger"
	"github.com/MonkeyShock/Banco-Transacoes/pkg/service"
)

// Account is one account to create.
type Account struct {
	ID     string `yaml:"id"`
	Holder string `yaml:"holder"`
	Opened string `yaml:"opened"`
}

// Transaction is one transaction to schedule. Amount is a signed decimal
// string; an empty ID gets a generated UUID. Effectuated pre-applies the
// status, matching the status-aware constructor.
type Transaction struct {
	ID          string `yaml:"id,omitempty"`
	Account     string `yaml:"account"`
	Amount      string `yaml:"amount"`
	Date        string `yaml:"date"`
	Effectuated bool   `yaml:"effectuated,omitempty"`
}

// Scenario is a complete demo data set.
type Scenario struct {
	Accounts     []Account     `yaml:"accounts"`
	Transactions []Transaction `yaml:"transactions"`
}

// Load parses a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &scenario, nil
}

// Apply creates the scenario's accounts and schedules its transactions.
// Entries are applied in file order, so a scenario can rely on its accounts
// existing before its transactions reference them.
func (s *Scenario) Apply(accounts *service.AccountService, l *ledger.Ledger) error {
	for _, entry := range s.Accounts {
		openedAt, err := ParseTime(entry.Opened)
		if err != nil {
			return fmt.Errorf("account %q: invalid opened date: %w", entry.ID, err)
		}
		if _, err := accounts.CreateAccount(entry.ID, entry.Holder, openedAt); err != nil {
			return err
		}
	}

	for _, entry := range s.Transactions {
		amount, err := decimal.NewFromString(entry.Amount)
		if err != nil {
			return fmt.Errorf("transaction %q: invalid amount %q: %w", entry.ID, entry.Amount, err)
		}
		timestamp, err := ParseTime(entry.Date)
		if err != nil {
			return fmt.Errorf("transaction %q: invalid date: %w", entry.ID, err)
		}

		id := entry.ID
		if id == "" {
			id = uuid.NewString()
		}
		status := ledger.StatusFuture
		if entry.Effectuated {
			status = ledger.StatusEffectuated
		}

		tx, err := ledger.NewTransactionWithStatus(id, entry.Account, amount, timestamp, status)
		if err != nil {
			return err
		}
		if err := l.Add(tx); err != nil {
			return err
		}
	}
	return nil
}

// ParseTime parses scenario dates, with or without a time of day.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or YYYY-MM-DD HH:MM", s)
}
