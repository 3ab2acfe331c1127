package cmd

import (
	"fmt"
	"time"

	"github.com/MonkeyShock/Banco-Transacoes/pkg/account"
	"github.com/MonkeyShock/Banco-Transacoes/pkg/config"
	"github.com/MonkeyShock/Banco-Transacoes/pkg/csvstore"
	"github.com/MonkeyShock/Banco-Transacoes/pkg/ledger"
	"github.com/MonkeyShock/Banco-Transacoes/pkg/pathutil"
	"github.com/MonkeyShock/Banco-Transacoes/pkg/seed"
	"github.com/MonkeyShock/Banco-Transacoes/pkg/service"
)

// app bundles the wired engine plus the paths its state came from. Each CLI
// invocation builds one app, runs one operation, and saves.
type app struct {
	paths      *pathutil.Resolver
	registry   *account.Registry
	accounts   *service.AccountService
	ledger     *ledger.Ledger
	statements *service.StatementService
}

// openApp loads configuration, wires the engine, and restores any CSV state
// present under the data directory. Missing state files mean a fresh ledger.
func openApp() (*app, error) {
	cfg, err := config.Load(getConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	paths := pathutil.New(pathutil.Config{
		DataDir:          cfg.DataDir,
		AccountsPath:     cfg.AccountsFile,
		TransactionsPath: cfg.TransactionsFile,
	})

	registry := account.NewRegistry()
	accounts := service.NewAccountService(registry, log)
	led := ledger.New(accounts.Lookup, log)
	accounts.UseLedger(led)

	a := &app{
		paths:      paths,
		registry:   registry,
		accounts:   accounts,
		ledger:     led,
		statements: service.NewStatementService(led, accounts),
	}

	if paths.FileExists(paths.AccountsPath()) {
		restored, err := csvstore.LoadAccounts(paths.AccountsPath(), registry)
		if err != nil {
			return nil, err
		}
		for _, acc := range restored {
			accounts.RestoreAccount(acc)
		}
		log.Debug().Int("count", len(restored)).Msg("accounts restored")
	}

	if paths.FileExists(paths.TransactionsPath()) {
		transactions, err := csvstore.LoadTransactions(paths.TransactionsPath())
		if err != nil {
			return nil, err
		}
		for _, tx := range transactions {
			if err := led.Add(tx); err != nil {
				return nil, err
			}
		}
		log.Debug().Int("count", len(transactions)).Msg("transactions restored")
	}

	return a, nil
}

// save writes the full state back to the CSV files.
func (a *app) save() error {
	if err := a.paths.EnsureDataDir(); err != nil {
		return err
	}
	if err := csvstore.SaveAccounts(a.paths.AccountsPath(), a.accounts.Accounts()); err != nil {
		return err
	}
	return csvstore.SaveTransactions(a.paths.TransactionsPath(), a.ledger.Transactions())
}

// parseDate parses the date flags shared by the commands.
func parseDate(flag, value string) (time.Time, error) {
	t, err := seed.ParseTime(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return t, nil
}
