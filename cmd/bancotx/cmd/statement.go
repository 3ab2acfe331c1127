package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	statementAccount string
	statementFrom    string
	statementTo      string
)

var statementCmd = &cobra.Command{
	Use:   "statement",
	Short: "Print an account statement for a period",
	Long: `Print the statement for an account over [--from, --to]: the opening
balance one day before the period, every applied movement with its running
balance, and the closing balance at the end of the period.

Both balance reads effectuate due transactions, so the saved state advances.`,
	Run: runStatement,
}

func init() {
	statementCmd.Flags().StringVar(&statementAccount, "account", "", "account id (required)")
	statementCmd.Flags().StringVar(&statementFrom, "from", "", "period start (required)")
	statementCmd.Flags().StringVar(&statementTo, "to", "", "period end, inclusive (required)")
	statementCmd.MarkFlagRequired("account")
	statementCmd.MarkFlagRequired("from")
	statementCmd.MarkFlagRequired("to")
}

func runStatement(cmd *cobra.Command, args []string) {
	from, err := parseDate("from", statementFrom)
	exitOnError(err, "invalid flags")
	to, err := parseDate("to", statementTo)
	exitOnError(err, "invalid flags")

	a, err := openApp()
	exitOnError(err, "failed to load state")

	stmt, err := a.statements.BuildStatement(statementAccount, from, to)
	exitOnError(err, "failed to build statement")

	exitOnError(a.save(), "failed to save state")

	fmt.Printf("Statement for %s [%s .. %s]\n", statementAccount, statementFrom, statementTo)
	fmt.Printf("Opening balance: %s\n", stmt.OpeningBalance())
	for _, mov := range stmt.Movements() {
		fmt.Printf("%s | %12s | balance %s\n",
			mov.Timestamp.Format("2006-01-02 15:04"), mov.Amount, mov.Balance)
	}
	fmt.Printf("Closing balance: %s\n", stmt.ClosingBalance())
}
