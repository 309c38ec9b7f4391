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

// --- Mocks ---

type mockLoanRepository struct {
	saveFunc             func(ctx context.Context, loan model.Loan) error
	findByIDFunc         func(ctx context.Context, id string) (model.Loan, error)
	findByBorrowerIDFunc func(ctx context.Context, borrowerID string) ([]model.Loan, error)
	savedLoans           []model.Loan
}

func (m *mockLoanRepository) Save(ctx context.Context, loan model.Loan) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, loan)
	}
	m.savedLoans = append(m.savedLoans, loan)
	return nil
}

func (m *mockLoanRepository) FindByID(ctx context.Context, id string) (model.Loan, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Loan{}, fmt.Errorf("loan not found")
}

func (m *mockLoanRepository) FindByBorrowerID(ctx context.Context, borrowerID string) ([]model.Loan, error) {
	if m.findByBorrowerIDFunc != nil {
		return m.findByBorrowerIDFunc(ctx, borrowerID)
	}
	return nil, nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

// --- Tests ---

func validCreateRequest() dto.CreateLoanRequest {
	return dto.CreateLoanRequest{
		BorrowerID:     "borrower-001",
		Principal:      5000,
		Currency:       "SGD",
		TermCount:      3,
		ProcessingDate: time.Date(2020, 1, 20, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateLoan_Execute(t *testing.T) {
	t.Run("creates a loan with its schedule", func(t *testing.T) {
		loanRepo := &mockLoanRepository{}
		publisher := &mockEventPublisher{}

		uc := usecase.NewCreateLoanUseCase(loanRepo, publisher)

		resp, err := uc.Execute(context.Background(), validCreateRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "borrower-001", resp.BorrowerID)
		assert.Equal(t, int64(5000), resp.Principal)
		assert.Equal(t, int64(5000), resp.OutstandingBalance)
		assert.Equal(t, "DUE", resp.Status)
		require.Len(t, resp.Installments, 3)
		assert.Equal(t, int64(1667), resp.Installments[0].Amount)
		assert.Equal(t, int64(1666), resp.Installments[2].Amount)

		require.Len(t, loanRepo.savedLoans, 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "lending.loan.created", publisher.publishedEvents[0].EventType())
	})

	t.Run("fails on invalid request", func(t *testing.T) {
		loanRepo := &mockLoanRepository{}
		publisher := &mockEventPublisher{}

		uc := usecase.NewCreateLoanUseCase(loanRepo, publisher)

		req := validCreateRequest()
		req.Principal = 0
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "create loan")
		assert.Empty(t, loanRepo.savedLoans)
	})

	t.Run("fails when loan save fails", func(t *testing.T) {
		loanRepo := &mockLoanRepository{
			saveFunc: func(ctx context.Context, l model.Loan) error {
				return fmt.Errorf("database unavailable")
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewCreateLoanUseCase(loanRepo, publisher)

		_, err := uc.Execute(context.Background(), validCreateRequest())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "save loan")
		assert.Empty(t, publisher.publishedEvents)
	})

	t.Run("fails when event publishing fails", func(t *testing.T) {
		loanRepo := &mockLoanRepository{}
		publisher := &mockEventPublisher{
			publishFunc: func(ctx context.Context, evts ...event.DomainEvent) error {
				return fmt.Errorf("kafka unavailable")
			},
		}

		uc := usecase.NewCreateLoanUseCase(loanRepo, publisher)

		_, err := uc.Execute(context.Background(), validCreateRequest())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish events")
	})
}
