package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianbank/lending/internal/domain/event"
	"github.com/meridianbank/lending/internal/domain/model"
	"github.com/meridianbank/lending/internal/domain/valueobject"
)

var (
	testStart = time.Date(2020, 1, 20, 0, 0, 0, 0, time.UTC)
	testNow   = time.Date(2020, 1, 20, 9, 30, 0, 0, time.UTC)
)

// threeTermLoan builds a 5000-minor-unit loan over 3 months. The generated
// installment amounts are 1667, 1667 and 1666, due on 2020-02-20, 2020-03-20
// and 2020-04-20.
func threeTermLoan(t *testing.T) model.Loan {
	t.Helper()
	loan, err := model.NewLoan("borrower-001", 5000, "SGD", 3, testStart, testNow)
	require.NoError(t, err)
	return loan
}

func TestNewLoan(t *testing.T) {
	t.Run("starts DUE with outstanding equal to principal", func(t *testing.T) {
		loan := threeTermLoan(t)

		assert.Equal(t, "borrower-001", loan.BorrowerID())
		assert.Equal(t, int64(5000), loan.Principal().Amount())
		assert.Equal(t, int64(5000), loan.Outstanding().Amount())
		assert.Equal(t, valueobject.LoanStatusDue, loan.Status())
		assert.Equal(t, 3, loan.TermCount())
		assert.Equal(t, "SGD", loan.Currency().Code())
		assert.Len(t, loan.Installments(), 3)
		assert.Empty(t, loan.Payments())
		assert.Equal(t, 1, loan.Version())
	})

	t.Run("emits LoanCreated", func(t *testing.T) {
		loan := threeTermLoan(t)

		evts := loan.DomainEvents()
		require.Len(t, evts, 1)
		created, ok := evts[0].(event.LoanCreated)
		require.True(t, ok)
		assert.Equal(t, loan.ID(), created.AggregateID())
		assert.Equal(t, int64(5000), created.Principal)
		assert.Equal(t, testStart.AddDate(0, 1, 0), created.FirstDueDate)
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		cases := []struct {
			name      string
			borrower  string
			principal int64
			currency  string
			term      int
		}{
			{"missing borrower", "", 5000, "SGD", 3},
			{"zero principal", "b-1", 0, "SGD", 3},
			{"negative principal", "b-1", -5, "SGD", 3},
			{"bad currency", "b-1", 5000, "sg", 3},
			{"zero term", "b-1", 5000, "SGD", 0},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := model.NewLoan(tc.borrower, tc.principal, tc.currency, tc.term, testStart, testNow)
				assert.Error(t, err)
			})
		}
	})
}

func TestApplyPayment(t *testing.T) {
	firstDue := testStart.AddDate(0, 1, 0)

	t.Run("exact installment amount settles only that installment", func(t *testing.T) {
		loan := threeTermLoan(t)

		paid, err := loan.ApplyPayment(1667, "SGD", firstDue, testNow)
		require.NoError(t, err)

		insts := paid.Installments()
		assert.Equal(t, valueobject.InstallmentStatusRepaid, insts[0].Status)
		assert.Equal(t, int64(0), insts[0].Outstanding.Amount())
		assert.Equal(t, valueobject.InstallmentStatusDue, insts[1].Status)
		assert.Equal(t, int64(1667), insts[1].Outstanding.Amount())
		assert.Equal(t, valueobject.InstallmentStatusDue, insts[2].Status)

		assert.Equal(t, int64(3333), paid.Outstanding().Amount())
		assert.Equal(t, valueobject.LoanStatusDue, paid.Status())
		require.Len(t, paid.Payments(), 1)
		assert.Equal(t, int64(1667), paid.Payments()[0].Amount.Amount())
	})

	t.Run("partial payment leaves the first installment PARTIAL", func(t *testing.T) {
		loan := threeTermLoan(t)

		paid, err := loan.ApplyPayment(1000, "SGD", firstDue, testNow)
		require.NoError(t, err)

		insts := paid.Installments()
		assert.Equal(t, valueobject.InstallmentStatusPartial, insts[0].Status)
		assert.Equal(t, int64(667), insts[0].Outstanding.Amount())
		assert.Equal(t, valueobject.InstallmentStatusDue, insts[1].Status)
		assert.Equal(t, valueobject.LoanStatusDue, paid.Status())
		assert.Equal(t, int64(4000), paid.Outstanding().Amount())
	})

	t.Run("payment spanning two installments", func(t *testing.T) {
		loan := threeTermLoan(t)

		paid, err := loan.ApplyPayment(2000, "SGD", firstDue, testNow)
		require.NoError(t, err)

		insts := paid.Installments()
		assert.Equal(t, valueobject.InstallmentStatusRepaid, insts[0].Status)
		assert.Equal(t, int64(0), insts[0].Outstanding.Amount())
		assert.Equal(t, valueobject.InstallmentStatusPartial, insts[1].Status)
		assert.Equal(t, int64(1667-(2000-1667)), insts[1].Outstanding.Amount())
		assert.Equal(t, valueobject.InstallmentStatusDue, insts[2].Status)
		assert.Equal(t, int64(3000), paid.Outstanding().Amount())
	})

	t.Run("installments due before the payment date are skipped", func(t *testing.T) {
		loan := threeTermLoan(t)

		// Received after the first due date: allocation starts at the second.
		received := firstDue.AddDate(0, 0, 5)
		paid, err := loan.ApplyPayment(1667, "SGD", received, testNow)
		require.NoError(t, err)

		insts := paid.Installments()
		assert.Equal(t, valueobject.InstallmentStatusDue, insts[0].Status)
		assert.Equal(t, valueobject.InstallmentStatusRepaid, insts[1].Status)
		assert.Equal(t, valueobject.InstallmentStatusDue, insts[2].Status)
		assert.Equal(t, int64(3333), paid.Outstanding().Amount())
	})

	t.Run("payment on the due date includes that installment", func(t *testing.T) {
		loan := threeTermLoan(t)
		lastDue := testStart.AddDate(0, 3, 0)

		// Pay down to the final installment first.
		paid, err := loan.ApplyPayment(3334, "SGD", firstDue, testNow)
		require.NoError(t, err)
		require.Equal(t, int64(1666), paid.Outstanding().Amount())

		settled, err := paid.ApplyPayment(1666, "SGD", lastDue, testNow)
		require.NoError(t, err)

		assert.Equal(t, valueobject.LoanStatusRepaid, settled.Status())
		assert.Equal(t, int64(0), settled.Outstanding().Amount())
		last := settled.Installments()[2]
		assert.Equal(t, valueobject.InstallmentStatusRepaid, last.Status)
		assert.Equal(t, int64(0), last.Outstanding.Amount())
	})

	t.Run("overpayment is clamped, not rejected", func(t *testing.T) {
		loan := threeTermLoan(t)

		paid, err := loan.ApplyPayment(6000, "SGD", firstDue, testNow)
		require.NoError(t, err)

		for _, inst := range paid.Installments() {
			assert.Equal(t, valueobject.InstallmentStatusRepaid, inst.Status)
			assert.Equal(t, int64(0), inst.Outstanding.Amount())
		}
		assert.Equal(t, int64(0), paid.Outstanding().Amount())
		assert.Equal(t, valueobject.LoanStatusRepaid, paid.Status())
	})

	t.Run("payments summing to the principal settle the loan", func(t *testing.T) {
		loan := threeTermLoan(t)

		var err error
		for i, inst := range loan.Installments() {
			loan, err = loan.ApplyPayment(inst.Amount.Amount(), "SGD", inst.DueDate, testNow)
			require.NoError(t, err, "payment %d", i+1)
		}

		assert.Equal(t, valueobject.LoanStatusRepaid, loan.Status())
		assert.Equal(t, int64(0), loan.Outstanding().Amount())
		assert.Len(t, loan.Payments(), 3)
	})

	t.Run("emits PaymentReceived and LoanRepaid", func(t *testing.T) {
		loan := threeTermLoan(t).ClearEvents()

		paid, err := loan.ApplyPayment(5000, "SGD", firstDue, testNow)
		require.NoError(t, err)

		evts := paid.DomainEvents()
		require.Len(t, evts, 2)
		received, ok := evts[0].(event.PaymentReceived)
		require.True(t, ok)
		assert.Equal(t, int64(5000), received.Amount)
		assert.Equal(t, int64(0), received.OutstandingBalance)
		assert.Equal(t, 3, received.InstallmentsRepaid)
		_, ok = evts[1].(event.LoanRepaid)
		assert.True(t, ok)
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		loan := threeTermLoan(t)

		_, err := loan.ApplyPayment(2000, "SGD", firstDue, testNow)
		require.NoError(t, err)

		assert.Equal(t, int64(5000), loan.Outstanding().Amount())
		assert.Equal(t, valueobject.InstallmentStatusDue, loan.Installments()[0].Status)
		assert.Empty(t, loan.Payments())
	})

	t.Run("rejects invalid payments", func(t *testing.T) {
		loan := threeTermLoan(t)

		_, err := loan.ApplyPayment(0, "SGD", firstDue, testNow)
		assert.Error(t, err)

		_, err = loan.ApplyPayment(-100, "SGD", firstDue, testNow)
		assert.Error(t, err)

		_, err = loan.ApplyPayment(100, "USD", firstDue, testNow)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "currency")
	})

	t.Run("rejects payments on a repaid loan", func(t *testing.T) {
		loan := threeTermLoan(t)

		paid, err := loan.ApplyPayment(5000, "SGD", firstDue, testNow)
		require.NoError(t, err)

		_, err = paid.ApplyPayment(100, "SGD", firstDue, testNow)
		assert.ErrorIs(t, err, valueobject.ErrLoanRepaid)
	})
}
