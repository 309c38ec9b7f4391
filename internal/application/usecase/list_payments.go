package usecase

import (
	"context"
	"fmt"

	"github.com/meridianbank/lending/internal/application/dto"
	"github.com/meridianbank/lending/internal/domain/port"
)

// ListPaymentsUseCase returns the payments recorded against a loan.
type ListPaymentsUseCase struct {
	loanRepo port.LoanRepository
}

// NewListPaymentsUseCase wires dependencies.
func NewListPaymentsUseCase(loanRepo port.LoanRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{loanRepo: loanRepo}
}

// Execute returns the recorded payments ordered by receipt time.
func (uc *ListPaymentsUseCase) Execute(
	ctx context.Context,
	req dto.ListPaymentsRequest,
) ([]dto.PaymentRecordResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return nil, fmt.Errorf("find loan: %w", err)
	}
	return toPaymentRecordResponses(loan.Payments()), nil
}
