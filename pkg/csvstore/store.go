// Package csvstore reads and writes the CSV state files that external tools
// exchange with the ledger engine. It only touches the core through public
// getters and the reconstruction constructors, never through internals.
//
// Accounts:     id,holderName,openingDate,balance   (openingDate YYYY-MM-DD)
// Transactions: id,accountId,amount,date,status     (status EFETIVADA|FUTURA)
package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MonkeyShock/Banco-Transacoes/pkg/account"
	"github.com/MonkeyShock/Banco-Transacoes/pkg/ledger"
)

const dateLayout = "2006-01-02"

var (
	accountsHeader     = []string{"id", "holderName", "openingDate", "balance"}
	transactionsHeader = []string{"id", "accountId", "amount", "date", "status"}
)

// SaveAccounts writes one row per account, header included.
func SaveAccounts(path string, accounts []*account.Account) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create accounts file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(accountsHeader); err != nil {
		return fmt.Errorf("failed to write accounts header: %w", err)
	}
	for _, acc := range accounts {
		record := []string{
			acc.ID(),
			acc.HolderName(),
			acc.OpenedAt().Format(dateLayout),
			acc.Balance().String(),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write account %q: %w", acc.ID(), err)
		}
	}
	w.Flush()
	return w.Error()
}

// LoadAccounts reads an accounts CSV and reconstructs each row through
// account.Restore, reserving ids in reg.
func LoadAccounts(path string, reg *account.Registry) ([]*account.Account, error) {
	records, err := readRecords(path, accountsHeader)
	if err != nil {
		return nil, err
	}

	accounts := make([]*account.Account, 0, len(records))
	for i, record := range records {
		openedAt, err := time.Parse(dateLayout, record[2])
		if err != nil {
			return nil, fmt.Errorf("accounts row %d: invalid openingDate %q: %w", i+1, record[2], err)
		}
		balance, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("accounts row %d: invalid balance %q: %w", i+1, record[3], err)
		}
		acc, err := account.Restore(reg, record[0], record[1], openedAt, balance)
		if err != nil {
			return nil, fmt.Errorf("accounts row %d: %w", i+1, err)
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// SaveTransactions writes one row per transaction, header included, in the
// order given (the ledger's storage order).
func SaveTransactions(path string, transactions []*ledger.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create transactions file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(transactionsHeader); err != nil {
		return fmt.Errorf("failed to write transactions header: %w", err)
	}
	for _, tx := range transactions {
		record := []string{
			tx.ID(),
			tx.AccountID(),
			tx.Amount().String(),
			tx.Timestamp().Format(dateLayout),
			string(tx.Status()),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write transaction %q: %w", tx.ID(), err)
		}
	}
	w.Flush()
	return w.Error()
}

// LoadTransactions reads a transactions CSV and reconstructs each row with
// its persisted status.
func LoadTransactions(path string) ([]*ledger.Transaction, error) {
	records, err := readRecords(path, transactionsHeader)
	if err != nil {
		return nil, err
	}

	transactions := make([]*ledger.Transaction, 0, len(records))
	for i, record := range records {
		amount, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, fmt.Errorf("transactions row %d: invalid amount %q: %w", i+1, record[2], err)
		}
		timestamp, err := time.Parse(dateLayout, record[3])
		if err != nil {
			return nil, fmt.Errorf("transactions row %d: invalid date %q: %w", i+1, record[3], err)
		}
		status, err := ledger.ParseStatus(record[4])
		if err != nil {
			return nil, fmt.Errorf("transactions row %d: %w", i+1, err)
		}
		tx, err := ledger.NewTransactionWithStatus(record[0], record[1], amount, timestamp, status)
		if err != nil {
			return nil, fmt.Errorf("transactions row %d: %w", i+1, err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// readRecords reads a CSV file, verifies the header, and returns the data
// rows. A missing header or a wrong column set is an error; empty files with
// just the header load as zero rows.
func readRecords(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}
	for i, name := range header {
		if rows[0][i] != name {
			return nil, fmt.Errorf("%s: unexpected header %v, want %v", path, rows[0], header)
		}
	}
	return rows[1:], nil
}
