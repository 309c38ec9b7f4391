package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/meridianbank/lending/internal/application/dto"
	"github.com/meridianbank/lending/internal/domain/model"
	"github.com/meridianbank/lending/internal/domain/port"
	"github.com/meridianbank/lending/pkg/observability"
)

// CreateLoanUseCase opens a new loan with its repayment schedule.
type CreateLoanUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

// NewCreateLoanUseCase wires dependencies.
func NewCreateLoanUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute creates the loan, persists it and publishes its events.
func (uc *CreateLoanUseCase) Execute(
	ctx context.Context,
	req dto.CreateLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loan, err := model.NewLoan(
		req.BorrowerID,
		req.Principal,
		req.Currency,
		req.TermCount,
		req.ProcessingDate,
		now,
	)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("create loan: %w", err)
	}

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	observability.LoansCreated.WithLabelValues(loan.Currency().Code()).Inc()

	return toLoanResponse(loan), nil
}
