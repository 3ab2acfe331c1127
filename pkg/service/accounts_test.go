package service

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MonkeyShock/Banco-Transacoes/pkg/account"
	"github.com/MonkeyShock/Banco-Transacoes/pkg/ledger"
)

var opened = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newServices(t *testing.T) (*AccountService, *ledger.Ledger) {
	t.Helper()
	accounts := NewAccountService(account.NewRegistry(), zerolog.Nop())
	led := ledger.New(accounts.Lookup, zerolog.Nop())
	accounts.UseLedger(led)
	return accounts, led
}

func addTx(t *testing.T, led *ledger.Ledger, id, accountID, amount string, at time.Time) {
	t.Helper()
	tx, err := ledger.NewTransaction(id, accountID, decimal.RequireFromString(amount), at)
	require.NoError(t, err)
	require.NoError(t, led.Add(tx))
}

func TestAccountService_CreateAccount(t *testing.T) {
	accounts, _ := newServices(t)

	acc, err := accounts.CreateAccount("001", "Joao Silva", opened)
	require.NoError(t, err)
	assert.Equal(t, "001", acc.ID())

	got, ok := accounts.Lookup("001")
	require.True(t, ok)
	assert.Same(t, acc, got)
}

func TestAccountService_CreateAccount_DuplicateID(t *testing.T) {
	accounts, _ := newServices(t)
	_, err := accounts.CreateAccount("001", "Joao Silva", opened)
	require.NoError(t, err)

	_, err = accounts.CreateAccount("001", "Maria Santos", opened)
	assert.ErrorIs(t, err, account.ErrDuplicateID)
}

func TestAccountService_Lookup_Miss(t *testing.T) {
	accounts, _ := newServices(t)

	acc, ok := accounts.Lookup("missing")
	assert.False(t, ok)
	assert.Nil(t, acc)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	accounts, _ := newServices(t)

	_, err := accounts.GetAccount("missing")
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestAccountService_GetBalance(t *testing.T) {
	accounts, led := newServices(t)
	_, err := accounts.CreateAccount("001", "Joao Silva", opened)
	require.NoError(t, err)
	addTx(t, led, "tx1", "001", "100", opened.Add(1*time.Hour))
	addTx(t, led, "tx2", "001", "-40", opened.Add(2*time.Hour))
	addTx(t, led, "tx3", "001", "999", opened.Add(48*time.Hour))

	balance, err := accounts.GetBalance("001", opened.Add(3*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "60", balance.String())
}

func TestAccountService_GetBalance_SweepsAllAccounts(t *testing.T) {
	accounts, led := newServices(t)
	_, err := accounts.CreateAccount("001", "Joao Silva", opened)
	require.NoError(t, err)
	other, err := accounts.CreateAccount("002", "Maria Santos", opened)
	require.NoError(t, err)
	addTx(t, led, "tx1", "002", "250", opened.Add(time.Hour))

	// Reading one account's balance advances the whole ledger.
	_, err = accounts.GetBalance("001", opened.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "250", other.Balance().String())
}

func TestAccountService_GetBalance_SkipsFailedTransactions(t *testing.T) {
	accounts, led := newServices(t)
	acc, err := accounts.CreateAccount("001", "Joao Silva", opened)
	require.NoError(t, err)
	addTx(t, led, "overdraft", "001", "-500", opened.Add(1*time.Hour))
	addTx(t, led, "credit", "001", "100", opened.Add(2*time.Hour))

	balance, err := accounts.GetBalance("001", opened.Add(3*time.Hour))
	require.NoError(t, err, "a skipped transaction must not fail the read")
	assert.Equal(t, "100", balance.String())
	assert.Same(t, acc, mustLookup(t, accounts, "001"))
}

func TestAccountService_GetBalance_UnknownAccount(t *testing.T) {
	accounts, _ := newServices(t)

	_, err := accounts.GetBalance("missing", opened)
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestAccountService_GetTotal(t *testing.T) {
	accounts, led := newServices(t)
	_, err := accounts.CreateAccount("001", "Joao Silva", opened)
	require.NoError(t, err)
	t1 := opened.Add(1 * time.Hour)
	t2 := opened.Add(2 * time.Hour)
	t3 := opened.Add(3 * time.Hour)
	addTx(t, led, "tx1", "001", "100", t1)
	addTx(t, led, "tx2", "001", "-30", t2)
	addTx(t, led, "tx3", "001", "500", t3)
	led.EffectuateUntil(t2)

	// Only effectuated transactions count; tx3 is still scheduled.
	total, err := accounts.GetTotal("001", t1, t3)
	require.NoError(t, err)
	assert.Equal(t, "70", total.String())

	// Bounds are inclusive.
	total, err = accounts.GetTotal("001", t2, t2)
	require.NoError(t, err)
	assert.Equal(t, "-30", total.String())
}

func TestAccountService_GetTotal_UnknownAccount(t *testing.T) {
	accounts, _ := newServices(t)

	_, err := accounts.GetTotal("missing", opened, opened.Add(time.Hour))
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestAccountService_GetTotal_EmptyPeriod(t *testing.T) {
	accounts, _ := newServices(t)
	_, err := accounts.CreateAccount("001", "Joao Silva", opened)
	require.NoError(t, err)

	total, err := accounts.GetTotal("001", opened, opened.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestAccountService_Accounts_SortedByID(t *testing.T) {
	accounts, _ := newServices(t)
	for _, id := range []string{"003", "001", "002"} {
		_, err := accounts.CreateAccount(id, "holder "+id, opened)
		require.NoError(t, err)
	}

	list := accounts.Accounts()
	require.Len(t, list, 3)
	assert.Equal(t, "001", list[0].ID())
	assert.Equal(t, "002", list[1].ID())
	assert.Equal(t, "003", list[2].ID())
}

func mustLookup(t *testing.T, accounts *AccountService, id string) *account.Account {
	t.Helper()
	acc, ok := accounts.Lookup(id)
	require.True(t, ok)
	return acc
}
