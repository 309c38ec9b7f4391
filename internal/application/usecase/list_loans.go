package usecase

import (
	"context"
	"fmt"

	"github.com/meridianbank/lending/internal/application/dto"
	"github.com/meridianbank/lending/internal/domain/port"
)

// ListLoansUseCase returns all loans held by a borrower.
type ListLoansUseCase struct {
	loanRepo port.LoanRepository
}

// NewListLoansUseCase wires dependencies.
func NewListLoansUseCase(loanRepo port.LoanRepository) *ListLoansUseCase {
	return &ListLoansUseCase{loanRepo: loanRepo}
}

// Execute returns the borrower's loans, newest first.
func (uc *ListLoansUseCase) Execute(
	ctx context.Context,
	req dto.ListLoansRequest,
) ([]dto.LoanResponse, error) {
	loans, err := uc.loanRepo.FindByBorrowerID(ctx, req.BorrowerID)
	if err != nil {
		return nil, fmt.Errorf("find loans: %w", err)
	}

	out := make([]dto.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		out = append(out, toLoanResponse(loan))
	}
	return out, nil
}
