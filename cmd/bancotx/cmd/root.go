// Package cmd provides the CLI commands for bancotx.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MonkeyShock/Banco-Transacoes/internal/logger"
)

var (
	cfgFile string
	debug   bool

	log zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bancotx",
	Short: "Track account balances driven by scheduled transactions",
	Long: `bancotx manages a ledger of dated, signed transactions that move
between two states: scheduled (FUTURA) and applied (EFETIVADA).

State lives in two CSV files (accounts and transactions) under the data
directory. Every command loads the state, runs one operation, and saves
the state back.

Example:
  bancotx account add --id 001 --holder "Joao Silva" --opened 2024-01-01
  bancotx tx add --account 001 --amount 5000.00 --date 2024-01-02
  bancotx effectuate --until 2024-01-31
  bancotx statement --account 001 --from 2024-01-01 --to 2024-01-31`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logger.New(debug)
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(txCmd)
	rootCmd.AddCommand(effectuateCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(totalCmd)
	rootCmd.AddCommand(statementCmd)
	rootCmd.AddCommand(zeroDateCmd)
	rootCmd.AddCommand(demoCmd)
}

// Helper function to get config file path.
func getConfigFile() string {
	return cfgFile
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		log.Error().Err(err).Msg(msg)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
