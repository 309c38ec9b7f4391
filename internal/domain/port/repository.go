package port

import (
	"context"
	"errors"

	"github.com/meridianbank/lending/internal/domain/event"
	"github.com/meridianbank/lending/internal/domain/model"
)

// ErrLoanNotFound is returned when a loan reference cannot be resolved.
var ErrLoanNotFound = errors.New("loan not found")

// LoanRepository persists and retrieves loans together with their
// installments and payments. Save must be atomic: the loan row, every touched
// installment and any new payment persist together or not at all.
type LoanRepository interface {
	Save(ctx context.Context, loan model.Loan) error
	FindByID(ctx context.Context, id string) (model.Loan, error)
	FindByBorrowerID(ctx context.Context, borrowerID string) ([]model.Loan, error)
}

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
