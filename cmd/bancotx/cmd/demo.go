package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MonkeyShock/Banco-Transacoes/pkg/seed"
)

var (
	demoSeedFile string
	demoUntil    string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Load a YAML scenario into a fresh ledger",
	Long: `Load accounts and transactions from a YAML scenario file, optionally
run an effectuation sweep, and save the resulting state.

Example scenario:

  accounts:
    - {id: "001", holder: "Joao Silva", opened: "2024-01-01"}
  transactions:
    - {account: "001", amount: "5000.00", date: "2024-01-01 10:00"}
    - {account: "001", amount: "-1500.00", date: "2024-01-01 11:00"}

Example:
  bancotx demo --seed scenario.yaml --until 2024-01-31`,
	Run: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoSeedFile, "seed", "", "scenario YAML file (required)")
	demoCmd.Flags().StringVar(&demoUntil, "until", "", "effectuate up to this date after loading")
	demoCmd.MarkFlagRequired("seed")
}

func runDemo(cmd *cobra.Command, args []string) {
	scenario, err := seed.Load(demoSeedFile)
	exitOnError(err, "failed to load scenario")

	a, err := openApp()
	exitOnError(err, "failed to load state")

	exitOnError(scenario.Apply(a.accounts, a.ledger), "failed to apply scenario")
	log.Info().Int("accounts", len(scenario.Accounts)).
		Int("transactions", len(scenario.Transactions)).Msg("scenario applied")

	if demoUntil != "" {
		cutoff, err := parseDate("until", demoUntil)
		exitOnError(err, "invalid flags")
		failures := a.ledger.EffectuateUntil(cutoff)
		for _, f := range failures {
			fmt.Printf("Skipped %s (%s): %v\n", f.TransactionID, f.AccountID, f.Err)
		}
	}

	exitOnError(a.save(), "failed to save state")

	for _, acc := range a.accounts.Accounts() {
		fmt.Printf("%s  %-20s  balance %s\n", acc.ID(), acc.HolderName(), acc.Balance())
	}
}
