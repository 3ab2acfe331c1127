package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Reserve(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Reserve("001"))
	assert.True(t, reg.Has("001"))
	assert.Equal(t, 1, reg.Len())

	err := reg.Reserve("001")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestRegistry_Reserve_BlankID(t *testing.T) {
	reg := NewRegistry()

	for _, id := range []string{"", "   ", "\t"} {
		err := reg.Reserve(id)
		assert.ErrorIs(t, err, ErrEmptyID, "id %q", id)
	}
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_Release(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Reserve("001"))

	reg.Release("001")
	assert.False(t, reg.Has("001"))

	// Released ids can be reserved again.
	require.NoError(t, reg.Reserve("001"))

	// Releasing an unknown id is a no-op.
	reg.Release("missing")
}

func TestRegistry_Clear(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Reserve("001"))
	require.NoError(t, reg.Reserve("002"))

	reg.Clear()

	assert.Equal(t, 0, reg.Len())
	require.NoError(t, reg.Reserve("001"))
}

func TestRegistry_IsolatedInstances(t *testing.T) {
	first := NewRegistry()
	second := NewRegistry()

	require.NoError(t, first.Reserve("001"))
	require.NoError(t, second.Reserve("001"))
}
