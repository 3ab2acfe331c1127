// Package config provides configuration management for the ledger tooling.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	// DataDir is the directory holding the CSV state files.
	DataDir string
	// AccountsFile overrides the accounts CSV path; empty means the
	// resolver default under DataDir.
	AccountsFile string
	// TransactionsFile overrides the transactions CSV path.
	TransactionsFile string
	Debug            bool
}

// Load loads configuration from environment variables.
// It automatically loads a .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	return &Config{
		DataDir:          getEnvOrDefault("LEDGER_DATA_DIR", "./data"),
		AccountsFile:     os.Getenv("LEDGER_ACCOUNTS_FILE"),
		TransactionsFile: os.Getenv("LEDGER_TRANSACTIONS_FILE"),
		Debug:            os.Getenv("DEBUG") == "true",
	}, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("missing required configuration: LEDGER_DATA_DIR\nPlease check your .env file or environment variables")
	}
	return nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
