package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var zeroDateAccount string

var zeroDateCmd = &cobra.Command{
	Use:   "zero-date",
	Short: "Find the earliest date a from-zero replay of an account returns to zero",
	Long: `Replay the account's applied transactions in chronological order
against a simulated balance starting at zero, and print the date of the first
transaction after which that balance is exactly zero again.

This is an analytical query over history; it ignores the account's real
balance and does not modify any state.`,
	Run: runZeroDate,
}

func init() {
	zeroDateCmd.Flags().StringVar(&zeroDateAccount, "account", "", "account id (required)")
	zeroDateCmd.MarkFlagRequired("account")
}

func runZeroDate(cmd *cobra.Command, args []string) {
	a, err := openApp()
	exitOnError(err, "failed to load state")

	acc, err := a.accounts.GetAccount(zeroDateAccount)
	exitOnError(err, "unknown account")

	date, err := acc.EarliestZeroBalanceDate(a.ledger.Entries())
	exitOnError(err, "no zero-balance date")

	fmt.Printf("Earliest zero-balance date for %s: %s\n",
		zeroDateAccount, date.Format("2006-01-02 15:04"))
}
