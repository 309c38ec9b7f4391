package usecase

import (
	"context"
	"fmt"

	"github.com/meridianbank/lending/internal/application/dto"
	"github.com/meridianbank/lending/internal/domain/port"
)

// ListInstallmentsUseCase returns the repayment schedule of a loan.
type ListInstallmentsUseCase struct {
	loanRepo port.LoanRepository
}

// NewListInstallmentsUseCase wires dependencies.
func NewListInstallmentsUseCase(loanRepo port.LoanRepository) *ListInstallmentsUseCase {
	return &ListInstallmentsUseCase{loanRepo: loanRepo}
}

// Execute returns the schedule entries ordered by sequence.
func (uc *ListInstallmentsUseCase) Execute(
	ctx context.Context,
	req dto.ListInstallmentsRequest,
) ([]dto.InstallmentResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return nil, fmt.Errorf("find loan: %w", err)
	}
	return toInstallmentResponses(loan.Installments()), nil
}
