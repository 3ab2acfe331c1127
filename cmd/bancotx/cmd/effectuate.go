package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var effectuateUntil string

var effectuateCmd = &cobra.Command{
	Use:   "effectuate",
	Short: "Apply all scheduled transactions due at or before a date",
	Long: `Run an effectuation sweep: every FUTURA transaction dated at or
before --until is applied to its account and becomes EFETIVADA.

Transactions that cannot be applied (for example a debit exceeding the
balance) stay FUTURA and are reported; the rest of the sweep continues.`,
	Run: runEffectuate,
}

func init() {
	effectuateCmd.Flags().StringVar(&effectuateUntil, "until", "", "cutoff date (required)")
	effectuateCmd.MarkFlagRequired("until")
}

func runEffectuate(cmd *cobra.Command, args []string) {
	cutoff, err := parseDate("until", effectuateUntil)
	exitOnError(err, "invalid flags")

	a, err := openApp()
	exitOnError(err, "failed to load state")

	failures := a.ledger.EffectuateUntil(cutoff)
	exitOnError(a.save(), "failed to save state")

	for _, f := range failures {
		fmt.Printf("Skipped %s (%s): %v\n", f.TransactionID, f.AccountID, f.Err)
	}
	fmt.Printf("Effectuated transactions up to %s (%d skipped)\n", effectuateUntil, len(failures))
}
