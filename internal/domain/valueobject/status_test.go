package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianbank/lending/internal/domain/valueobject"
)

func TestNewLoanStatus(t *testing.T) {
	t.Run("accepts known statuses", func(t *testing.T) {
		for _, s := range []string{"DUE", "REPAID"} {
			status, err := valueobject.NewLoanStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		for _, s := range []string{"", "due", "PAID", "ACTIVE"} {
			_, err := valueobject.NewLoanStatus(s)
			assert.Error(t, err, "status %q", s)
		}
	})
}

func TestNewInstallmentStatus(t *testing.T) {
	t.Run("accepts known statuses", func(t *testing.T) {
		for _, s := range []string{"DUE", "PARTIAL", "REPAID"} {
			status, err := valueobject.NewInstallmentStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		_, err := valueobject.NewInstallmentStatus("SETTLED")
		assert.Error(t, err)
	})
}

func TestStatusEquality(t *testing.T) {
	assert.True(t, valueobject.LoanStatusDue.Equal(valueobject.LoanStatusDue))
	assert.False(t, valueobject.LoanStatusDue.Equal(valueobject.LoanStatusRepaid))
	assert.True(t, valueobject.LoanStatus{}.IsZero())
	assert.False(t, valueobject.InstallmentStatusPartial.IsZero())
}
