package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MonkeyShock/Banco-Transacoes/pkg/ledger"
)

var (
	txID          string
	txAccount     string
	txAmount      string
	txDate        string
	txEffectuated bool
	txRemoveID    string
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Manage transactions",
}

var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Schedule a transaction",
	Long: `Schedule a signed transaction against an account.

Positive amounts are credits, negative amounts are debits. Transactions are
created in the FUTURA state unless --effectuated is given; scheduled amounts
only hit the balance once an effectuation sweep reaches them.

Example:
  bancotx tx add --account 001 --amount 5000.00 --date 2024-01-02
  bancotx tx add --account 001 --amount=-1500.00 --date "2024-01-02 14:30"`,
	Run: runTxAdd,
}

var txRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a transaction, reversing its balance effect if applied",
	Run:   runTxRemove,
}

func init() {
	txAddCmd.Flags().StringVar(&txID, "id", "", "transaction id (default: generated UUID)")
	txAddCmd.Flags().StringVar(&txAccount, "account", "", "account id (required)")
	txAddCmd.Flags().StringVar(&txAmount, "amount", "", "signed decimal amount (required)")
	txAddCmd.Flags().StringVar(&txDate, "date", "", "date YYYY-MM-DD or \"YYYY-MM-DD HH:MM\" (required)")
	txAddCmd.Flags().BoolVar(&txEffectuated, "effectuated", false, "record as already applied (no balance change)")
	txAddCmd.MarkFlagRequired("account")
	txAddCmd.MarkFlagRequired("amount")
	txAddCmd.MarkFlagRequired("date")

	txRemoveCmd.Flags().StringVar(&txRemoveID, "id", "", "transaction id (required)")
	txRemoveCmd.MarkFlagRequired("id")

	txCmd.AddCommand(txAddCmd)
	txCmd.AddCommand(txRemoveCmd)
}

func runTxAdd(cmd *cobra.Command, args []string) {
	amount, err := decimal.NewFromString(txAmount)
	exitOnError(err, "invalid --amount")

	timestamp, err := parseDate("date", txDate)
	exitOnError(err, "invalid flags")

	id := txID
	if id == "" {
		id = uuid.NewString()
	}
	status := ledger.StatusFuture
	if txEffectuated {
		status = ledger.StatusEffectuated
	}

	tx, err := ledger.NewTransactionWithStatus(id, txAccount, amount, timestamp, status)
	exitOnError(err, "invalid transaction")

	a, err := openApp()
	exitOnError(err, "failed to load state")

	exitOnError(a.ledger.Add(tx), "failed to add transaction")
	exitOnError(a.save(), "failed to save state")

	log.Info().Str("transaction_id", id).Str("account_id", txAccount).
		Str("amount", amount.String()).Msg("transaction added")
	fmt.Printf("Added transaction %s (%s %s)\n", id, txAccount, amount)
}

func runTxRemove(cmd *cobra.Command, args []string) {
	a, err := openApp()
	exitOnError(err, "failed to load state")

	exitOnError(a.ledger.Remove(txRemoveID), "failed to remove transaction")
	exitOnError(a.save(), "failed to save state")

	log.Info().Str("transaction_id", txRemoveID).Msg("transaction removed")
	fmt.Printf("Removed transaction %s\n", txRemoveID)
}
