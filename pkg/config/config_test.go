package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LEDGER_DATA_DIR", "")
	t.Setenv("LEDGER_ACCOUNTS_FILE", "")
	t.Setenv("LEDGER_TRANSACTIONS_FILE", "")
	t.Setenv("DEBUG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./data", cfg.DataDir)
	assert.Empty(t, cfg.AccountsFile)
	assert.Empty(t, cfg.TransactionsFile)
	assert.False(t, cfg.Debug)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LEDGER_DATA_DIR", "/var/lib/bancotx")
	t.Setenv("LEDGER_ACCOUNTS_FILE", "/tmp/accounts.csv")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/bancotx", cfg.DataDir)
	assert.Equal(t, "/tmp/accounts.csv", cfg.AccountsFile)
	assert.True(t, cfg.Debug)
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("LEDGER_DATA_DIR", "")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LEDGER_DATA_DIR=/data/from-file\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/from-file", cfg.DataDir)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{DataDir: "./data"}
	assert.NoError(t, cfg.Validate())

	cfg.DataDir = ""
	assert.Error(t, cfg.Validate())
}
