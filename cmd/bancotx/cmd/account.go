package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	accountID     string
	accountHolder string
	accountOpened string
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage accounts",
}

var accountAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new account",
	Long: `Create an account with a zero balance.

The id must be unused across the whole directory. Transactions dated before
the opening date will be rejected.

Example:
  bancotx account add --id 001 --holder "Joao Silva" --opened 2024-01-01`,
	Run: runAccountAdd,
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts with their balances",
	Run:   runAccountList,
}

func init() {
	accountAddCmd.Flags().StringVar(&accountID, "id", "", "account id (required)")
	accountAddCmd.Flags().StringVar(&accountHolder, "holder", "", "holder name (required)")
	accountAddCmd.Flags().StringVar(&accountOpened, "opened", "", "opening date YYYY-MM-DD (required)")
	accountAddCmd.MarkFlagRequired("id")
	accountAddCmd.MarkFlagRequired("holder")
	accountAddCmd.MarkFlagRequired("opened")

	accountCmd.AddCommand(accountAddCmd)
	accountCmd.AddCommand(accountListCmd)
}

func runAccountAdd(cmd *cobra.Command, args []string) {
	openedAt, err := parseDate("opened", accountOpened)
	exitOnError(err, "invalid flags")

	a, err := openApp()
	exitOnError(err, "failed to load state")

	acc, err := a.accounts.CreateAccount(accountID, accountHolder, openedAt)
	exitOnError(err, "failed to create account")

	exitOnError(a.save(), "failed to save state")

	log.Info().Str("account_id", acc.ID()).Str("holder", acc.HolderName()).Msg("account created")
	fmt.Printf("Created account %s (%s)\n", acc.ID(), acc.HolderName())
}

func runAccountList(cmd *cobra.Command, args []string) {
	a, err := openApp()
	exitOnError(err, "failed to load state")

	accounts := a.accounts.Accounts()
	if len(accounts) == 0 {
		fmt.Println("No accounts")
		return
	}
	for _, acc := range accounts {
		fmt.Printf("%s  %-20s  opened %s  balance %s\n",
			acc.ID(), acc.HolderName(), acc.OpenedAt().Format("2006-01-02"), acc.Balance())
	}
}
