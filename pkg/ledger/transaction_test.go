package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tx, err := NewTransaction("tx1", "001", decimal.RequireFromString("-150.25"), at)
	require.NoError(t, err)

	assert.Equal(t, "tx1", tx.ID())
	assert.Equal(t, "001", tx.AccountID())
	assert.Equal(t, "-150.25", tx.Amount().String())
	assert.Equal(t, at, tx.Timestamp())
	assert.Equal(t, StatusFuture, tx.Status())
	assert.True(t, tx.IsFuture())
	assert.False(t, tx.IsEffectuated())
}

func TestNewTransactionWithStatus(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tx, err := NewTransactionWithStatus("tx1", "001", decimal.NewFromInt(100), at, StatusEffectuated)
	require.NoError(t, err)
	assert.True(t, tx.IsEffectuated())
}

func TestNewTransaction_Validation(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		id        string
		accountID string
		amount    decimal.Decimal
		status    Status
		wantErr   error
	}{
		{"blank id", "  ", "001", decimal.NewFromInt(1), StatusFuture, ErrEmptyTransactionID},
		{"blank account id", "tx1", "\t", decimal.NewFromInt(1), StatusFuture, ErrEmptyAccountID},
		{"zero amount", "tx1", "001", decimal.Zero, StatusFuture, ErrZeroAmount},
		{"unknown status", "tx1", "001", decimal.NewFromInt(1), Status("PENDENTE"), ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransactionWithStatus(tt.id, tt.accountID, tt.amount, at, tt.status)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseStatus(t *testing.T) {
	got, err := ParseStatus("FUTURA")
	require.NoError(t, err)
	assert.Equal(t, StatusFuture, got)

	got, err = ParseStatus("EFETIVADA")
	require.NoError(t, err)
	assert.Equal(t, StatusEffectuated, got)

	for _, s := range []string{"", "futura", "DONE"} {
		_, err := ParseStatus(s)
		assert.ErrorIs(t, err, ErrInvalidStatus, "input %q", s)
	}
}
