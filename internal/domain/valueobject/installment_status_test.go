package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstallmentStatus(t *testing.T) {
	t.Run("accepts known statuses", func(t *testing.T) {
		paid, err := NewInstallmentStatus("Paid")
		require.NoError(t, err)
		assert.True(t, paid.Equal(InstallmentStatusPaid))

		pending, err := NewInstallmentStatus("Pending")
		require.NoError(t, err)
		assert.True(t, pending.Equal(InstallmentStatusPending))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := NewInstallmentStatus("Settled")
		require.Error(t, err)
	})

	t.Run("rejects wrong case", func(t *testing.T) {
		_, err := NewInstallmentStatus("paid")
		require.Error(t, err)
	})
}

func TestInstallmentStatus_ZeroValue(t *testing.T) {
	var status InstallmentStatus
	assert.True(t, status.IsZero())
	assert.False(t, InstallmentStatusPaid.IsZero())
	assert.Equal(t, "", status.String())
}
