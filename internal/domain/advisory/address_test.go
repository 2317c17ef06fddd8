package advisory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("creates address with all lines", func(t *testing.T) {
		address, err := NewAddress("1 High Street", "Flat 2", "Camden", "London", "NW1 8QP")

		require.NoError(t, err)
		assert.NotNil(t, address)
		assert.Equal(t, "1 High Street", address.Line1)
		assert.Equal(t, "NW1 8QP", address.Line5)
		assert.NotEqual(t, address.ID.String(), "00000000-0000-0000-0000-000000000000")
		assert.Equal(t, 1, address.Version)
	})

	t.Run("creates address with only line 1", func(t *testing.T) {
		address, err := NewAddress("1 High Street", "", "", "", "")

		require.NoError(t, err)
		assert.Empty(t, address.Line2)
	})

	t.Run("trims line 1 whitespace", func(t *testing.T) {
		address, err := NewAddress("  1 High Street  ", "", "", "", "")

		require.NoError(t, err)
		assert.Equal(t, "1 High Street", address.Line1)
	})

	t.Run("fails with empty line 1", func(t *testing.T) {
		address, err := NewAddress("", "Flat 2", "", "", "")

		assert.Error(t, err)
		assert.Nil(t, address)
		assert.Contains(t, err.Error(), "line 1 is required")
	})

	t.Run("fails with whitespace-only line 1", func(t *testing.T) {
		address, err := NewAddress("   ", "", "", "", "")

		assert.Error(t, err)
		assert.Nil(t, address)
	})

	t.Run("fails when a line exceeds 200 characters", func(t *testing.T) {
		address, err := NewAddress("1 High Street", strings.Repeat("x", 201), "", "", "")

		assert.Error(t, err)
		assert.Nil(t, address)
		assert.Contains(t, err.Error(), "200 characters")
	})
}
