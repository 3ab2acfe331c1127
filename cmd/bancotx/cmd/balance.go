package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	balanceAccount string
	balanceAsOf    string

	totalAccount string
	totalFrom    string
	totalTo      string
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Read an account balance as of a date",
	Long: `Read an account balance as of a date.

This is a side-effecting read: transactions due at or before --as-of are
effectuated first, and the updated state is saved.`,
	Run: runBalance,
}

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Sum the applied transactions of an account over a period",
	Run:   runTotal,
}

func init() {
	balanceCmd.Flags().StringVar(&balanceAccount, "account", "", "account id (required)")
	balanceCmd.Flags().StringVar(&balanceAsOf, "as-of", "", "reference date (required)")
	balanceCmd.MarkFlagRequired("account")
	balanceCmd.MarkFlagRequired("as-of")

	totalCmd.Flags().StringVar(&totalAccount, "account", "", "account id (required)")
	totalCmd.Flags().StringVar(&totalFrom, "from", "", "period start (required)")
	totalCmd.Flags().StringVar(&totalTo, "to", "", "period end, inclusive (required)")
	totalCmd.MarkFlagRequired("account")
	totalCmd.MarkFlagRequired("from")
	totalCmd.MarkFlagRequired("to")
}

func runBalance(cmd *cobra.Command, args []string) {
	asOf, err := parseDate("as-of", balanceAsOf)
	exitOnError(err, "invalid flags")

	a, err := openApp()
	exitOnError(err, "failed to load state")

	balance, err := a.accounts.GetBalance(balanceAccount, asOf)
	exitOnError(err, "failed to read balance")

	exitOnError(a.save(), "failed to save state")

	fmt.Printf("Balance of %s as of %s: %s\n", balanceAccount, balanceAsOf, balance)
}

func runTotal(cmd *cobra.Command, args []string) {
	from, err := parseDate("from", totalFrom)
	exitOnError(err, "invalid flags")
	to, err := parseDate("to", totalTo)
	exitOnError(err, "invalid flags")

	a, err := openApp()
	exitOnError(err, "failed to load state")

	total, err := a.accounts.GetTotal(totalAccount, from, to)
	exitOnError(err, "failed to compute total")

	fmt.Printf("Total for %s in [%s, %s]: %s\n", totalAccount, totalFrom, totalTo, total)
}
