package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/meridianbank/lending/internal/application/dto"
	"github.com/meridianbank/lending/internal/domain/event"
	"github.com/meridianbank/lending/internal/domain/port"
	"github.com/meridianbank/lending/pkg/observability"
)

// ApplyPaymentUseCase allocates a repayment across a loan's schedule.
type ApplyPaymentUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

// NewApplyPaymentUseCase wires dependencies.
func NewApplyPaymentUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
) *ApplyPaymentUseCase {
	return &ApplyPaymentUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute processes a payment against a loan.
func (uc *ApplyPaymentUseCase) Execute(
	ctx context.Context,
	req dto.ApplyPaymentRequest,
) (dto.PaymentResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the loan.
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}

	// 2. Allocate the payment.
	loan, err = loan.ApplyPayment(req.Amount, req.Currency, req.ReceivedAt, now)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("apply payment: %w", err)
	}

	// 3. Persist updated loan.
	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("save loan: %w", err)
	}

	// 4. Publish events.
	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	observability.PaymentsApplied.WithLabelValues(loan.Status().String()).Inc()
	if repaid := repaidThisPayment(loan.DomainEvents()); repaid > 0 {
		observability.InstallmentsRepaid.Add(float64(repaid))
	}

	return dto.PaymentResponse{
		LoanID:             loan.ID(),
		AmountPaid:         req.Amount,
		Currency:           loan.Currency().Code(),
		OutstandingBalance: loan.Outstanding().Amount(),
		LoanStatus:         loan.Status().String(),
		Installments:       toInstallmentResponses(loan.Installments()),
	}, nil
}

// repaidThisPayment reads the number of installments settled by the most
// recent allocation from the raised PaymentReceived event.
func repaidThisPayment(evts []event.DomainEvent) int {
	for _, e := range evts {
		if received, ok := e.(event.PaymentReceived); ok {
			return received.InstallmentsRepaid
		}
	}
	return 0
}
