package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_LevelFilter(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, New(false).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, New(true).GetLevel())
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	log.Info().Str("account_id", "001").Msg("account created")

	out := buf.String()
	assert.Contains(t, out, `"account_id":"001"`)
	assert.Contains(t, out, `"message":"account created"`)
	assert.Contains(t, out, `"time"`)
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := WithFields(NewWithWriter(&buf), map[string]interface{}{
		"component": "ledger",
	})

	log.Info().Msg("sweep finished")

	assert.Contains(t, buf.String(), `"component":"ledger"`)
}
