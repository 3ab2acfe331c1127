// Package pathutil provides centralized path management for the CSV state
// files the ledger tooling reads and writes.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver manages paths for the data directory and the CSV state files.
type Resolver struct {
	dataDir          string
	accountsPath     string
	transactionsPath string
}

// Config represents the configuration for Resolver.
type Config struct {
	// DataDir is the root directory for ledger state (e.g., ~/bancotx/data)
	DataDir string
	// AccountsPath is the accounts CSV file path
	AccountsPath string
	// TransactionsPath is the transactions CSV file path
	TransactionsPath string
}

// New creates a new Resolver with the given configuration.
// If AccountsPath is empty, it defaults to {DataDir}/accounts.csv.
// If TransactionsPath is empty, it defaults to {DataDir}/transactions.csv.
func New(config Config) *Resolver {
	accountsPath := config.AccountsPath
	if accountsPath == "" {
		accountsPath = filepath.Join(config.DataDir, "accounts.csv")
	}

	transactionsPath := config.TransactionsPath
	if transactionsPath == "" {
		transactionsPath = filepath.Join(config.DataDir, "transactions.csv")
	}

	return &Resolver{
		dataDir:          config.DataDir,
		accountsPath:     accountsPath,
		transactionsPath: transactionsPath,
	}
}

// DataDir returns the data root directory.
func (r *Resolver) DataDir() string {
	return r.dataDir
}

// AccountsPath returns the accounts CSV file path.
func (r *Resolver) AccountsPath() string {
	return r.accountsPath
}

// TransactionsPath returns the transactions CSV file path.
func (r *Resolver) TransactionsPath() string {
	return r.transactionsPath
}

// EnsureDataDir creates the data directory if it doesn't exist.
// It creates all parent directories as needed (like mkdir -p).
func (r *Resolver) EnsureDataDir() error {
	if err := os.MkdirAll(r.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", r.dataDir, err)
	}
	return nil
}

// FileExists checks if a file exists.
func (r *Resolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
