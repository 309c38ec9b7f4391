package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianbank/lending/internal/application/dto"
	"github.com/meridianbank/lending/internal/application/usecase"
	"github.com/meridianbank/lending/internal/domain/event"
	"github.com/meridianbank/lending/internal/domain/model"
)

func dueLoan(t *testing.T) model.Loan {
	t.Helper()
	start := time.Date(2020, 1, 20, 0, 0, 0, 0, time.UTC)
	loan, err := model.NewLoan("borrower-001", 5000, "SGD", 3, start, start)
	require.NoError(t, err)
	return loan.ClearEvents()
}

func TestApplyPayment_Execute(t *testing.T) {
	received := time.Date(2020, 2, 20, 0, 0, 0, 0, time.UTC)

	t.Run("successfully applies a payment", func(t *testing.T) {
		loan := dueLoan(t)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewApplyPaymentUseCase(loanRepo, publisher)

		req := dto.ApplyPaymentRequest{
			LoanID:     loan.ID(),
			Amount:     2000,
			Currency:   "SGD",
			ReceivedAt: received,
		}
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, loan.ID(), resp.LoanID)
		assert.Equal(t, int64(2000), resp.AmountPaid)
		assert.Equal(t, int64(3000), resp.OutstandingBalance)
		assert.Equal(t, "DUE", resp.LoanStatus)
		require.Len(t, resp.Installments, 3)
		assert.Equal(t, "REPAID", resp.Installments[0].Status)
		assert.Equal(t, "PARTIAL", resp.Installments[1].Status)
		assert.Equal(t, int64(1334), resp.Installments[1].Outstanding)

		require.Len(t, loanRepo.savedLoans, 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "lending.loan.payment_received", publisher.publishedEvents[0].EventType())
	})

	t.Run("settles the loan on full payoff", func(t *testing.T) {
		loan := dueLoan(t)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewApplyPaymentUseCase(loanRepo, publisher)

		req := dto.ApplyPaymentRequest{
			LoanID:     loan.ID(),
			Amount:     5000,
			Currency:   "SGD",
			ReceivedAt: received,
		}
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "REPAID", resp.LoanStatus)
		assert.Equal(t, int64(0), resp.OutstandingBalance)
		require.Len(t, publisher.publishedEvents, 2)
		assert.Equal(t, "lending.loan.repaid", publisher.publishedEvents[1].EventType())
	})

	t.Run("fails when loan not found", func(t *testing.T) {
		loanRepo := &mockLoanRepository{}
		publisher := &mockEventPublisher{}

		uc := usecase.NewApplyPaymentUseCase(loanRepo, publisher)

		req := dto.ApplyPaymentRequest{LoanID: "missing", Amount: 100, Currency: "SGD", ReceivedAt: received}
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "find loan")
	})

	t.Run("fails on currency mismatch", func(t *testing.T) {
		loan := dueLoan(t)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewApplyPaymentUseCase(loanRepo, publisher)

		req := dto.ApplyPaymentRequest{LoanID: loan.ID(), Amount: 100, Currency: "USD", ReceivedAt: received}
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "apply payment")
		assert.Empty(t, loanRepo.savedLoans)
	})

	t.Run("fails when loan save fails", func(t *testing.T) {
		loan := dueLoan(t)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
			saveFunc: func(ctx context.Context, l model.Loan) error {
				return fmt.Errorf("database unavailable")
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewApplyPaymentUseCase(loanRepo, publisher)

		req := dto.ApplyPaymentRequest{LoanID: loan.ID(), Amount: 100, Currency: "SGD", ReceivedAt: received}
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "save loan")
		assert.Empty(t, publisher.publishedEvents)
	})

	t.Run("fails when event publishing fails", func(t *testing.T) {
		loan := dueLoan(t)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
		}
		publisher := &mockEventPublisher{
			publishFunc: func(ctx context.Context, evts ...event.DomainEvent) error {
				return fmt.Errorf("kafka unavailable")
			},
		}

		uc := usecase.NewApplyPaymentUseCase(loanRepo, publisher)

		req := dto.ApplyPaymentRequest{LoanID: loan.ID(), Amount: 100, Currency: "SGD", ReceivedAt: received}
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish events")
	})
}
