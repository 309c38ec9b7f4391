package model

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/meridianbank/lending/internal/domain/event"
	"github.com/meridianbank/lending/internal/domain/valueobject"
	"github.com/meridianbank/lending/pkg/money"
)

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

// Loan is an immutable aggregate. Mutations return a new copy.
type Loan struct {
	id             string
	borrowerID     string
	principal      money.Money
	currency       money.Currency
	termCount      int
	outstanding    money.Money
	processingDate time.Time
	status         valueobject.LoanStatus
	installments   []Installment
	payments       []Payment
	version        int
	createdAt      time.Time
	updatedAt      time.Time
	domainEvents   []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLoan creates a loan and generates its repayment schedule. The loan
// starts with outstanding equal to the principal and status DUE.
func NewLoan(
	borrowerID string,
	principal int64,
	currencyCode string,
	termCount int,
	processingDate time.Time,
	now time.Time,
) (Loan, error) {
	if borrowerID == "" {
		return Loan{}, errors.New("borrower ID is required")
	}
	if principal <= 0 {
		return Loan{}, errors.New("principal must be positive")
	}
	currency, err := money.NewCurrency(currencyCode)
	if err != nil {
		return Loan{}, err
	}
	if termCount <= 0 {
		return Loan{}, errors.New("term count must be positive")
	}

	id := uuid.New().String()
	amount := money.New(principal, currency)
	schedule := GenerateSchedule(amount, termCount, processingDate)

	loan := Loan{
		id:             id,
		borrowerID:     borrowerID,
		principal:      amount,
		currency:       currency,
		termCount:      termCount,
		outstanding:    amount,
		processingDate: processingDate,
		status:         valueobject.LoanStatusDue,
		installments:   schedule,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewLoanCreated(
		id, borrowerID, principal, currency.Code(), termCount,
		processingDate, schedule[0].DueDate,
	))

	return loan, nil
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	id, borrowerID string,
	principal money.Money,
	termCount int,
	status valueobject.LoanStatus,
	installments []Installment,
	payments []Payment,
	outstanding money.Money,
	processingDate time.Time,
	version int,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		id:             id,
		borrowerID:     borrowerID,
		principal:      principal,
		currency:       principal.Currency(),
		termCount:      termCount,
		outstanding:    outstanding,
		processingDate: processingDate,
		status:         status,
		installments:   installments,
		payments:       payments,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ---------------------------------------------------------------------------
// Repayment allocation
// ---------------------------------------------------------------------------

// ApplyPayment records a received repayment and allocates it across the
// loan's open installments in due-date order.
//
// Selection covers installments that are not yet fully repaid and whose due
// date is on or after receivedAt; earlier-due installments are deliberately
// outside this pass. Allocation compares the running remainder against each
// installment's full amount: full coverage settles the installment, partial
// coverage leaves it PARTIAL with the uncovered share outstanding and ends
// the walk. The loan's outstanding drops by the payment amount, clamped at
// zero; overpayment beyond the schedule is absorbed rather than rejected.
func (l Loan) ApplyPayment(amount int64, currencyCode string, receivedAt, now time.Time) (Loan, error) {
	if l.status.Equal(valueobject.LoanStatusRepaid) {
		return l, valueobject.ErrLoanRepaid
	}
	if amount <= 0 {
		return l, errors.New("payment amount must be positive")
	}
	currency, err := money.NewCurrency(currencyCode)
	if err != nil {
		return l, err
	}
	if currency != l.currency {
		return l, fmt.Errorf("payment currency %s does not match loan currency %s", currency, l.currency)
	}

	next := l
	next.installments = append([]Installment(nil), l.installments...)
	next.payments = append(append([]Payment(nil), l.payments...), Payment{
		ID:         uuid.New().String(),
		Amount:     money.New(amount, currency),
		ReceivedAt: receivedAt,
		CreatedAt:  now,
	})
	next.domainEvents = copyEvents(l.domainEvents)

	// Select, then sort, then walk.
	eligible := make([]*Installment, 0, len(next.installments))
	for i := range next.installments {
		inst := &next.installments[i]
		if inst.Status.Equal(valueobject.InstallmentStatusRepaid) {
			continue
		}
		if inst.DueDate.Before(receivedAt) {
			continue
		}
		eligible = append(eligible, inst)
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].DueDate.Before(eligible[j].DueDate)
	})

	remaining := amount
	repaidCount := 0
	for _, inst := range eligible {
		if remaining == 0 {
			break
		}
		if remaining >= inst.Amount.Amount() {
			inst.Outstanding = money.Zero(l.currency)
			inst.Status = valueobject.InstallmentStatusRepaid
			remaining -= inst.Amount.Amount()
			repaidCount++
			continue
		}
		inst.Outstanding = money.New(inst.Amount.Amount()-remaining, l.currency)
		inst.Status = valueobject.InstallmentStatusPartial
		remaining = 0
	}

	outstanding := l.outstanding.Amount() - amount
	if outstanding < 0 {
		outstanding = 0
	}
	next.outstanding = money.New(outstanding, l.currency)
	next.updatedAt = now

	paymentID := next.payments[len(next.payments)-1].ID
	if outstanding == 0 {
		next.status = valueobject.LoanStatusRepaid
	}
	next.domainEvents = append(next.domainEvents, event.NewPaymentReceived(
		l.id, paymentID, amount, currency.Code(), outstanding, repaidCount, receivedAt,
	))
	if outstanding == 0 {
		next.domainEvents = append(next.domainEvents, event.NewLoanRepaid(l.id))
	}

	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() string                        { return l.id }
func (l Loan) BorrowerID() string                { return l.borrowerID }
func (l Loan) Principal() money.Money            { return l.principal }
func (l Loan) Currency() money.Currency          { return l.currency }
func (l Loan) TermCount() int                    { return l.termCount }
func (l Loan) Outstanding() money.Money          { return l.outstanding }
func (l Loan) ProcessingDate() time.Time         { return l.processingDate }
func (l Loan) Status() valueobject.LoanStatus    { return l.status }
func (l Loan) Version() int                      { return l.version }
func (l Loan) CreatedAt() time.Time              { return l.createdAt }
func (l Loan) UpdatedAt() time.Time              { return l.updatedAt }
func (l Loan) DomainEvents() []event.DomainEvent { return l.domainEvents }

// Installments returns a defensive copy of the schedule, in due-date order.
func (l Loan) Installments() []Installment {
	if l.installments == nil {
		return nil
	}
	out := make([]Installment, len(l.installments))
	copy(out, l.installments)
	return out
}

// Payments returns a defensive copy of the received repayments, in receipt order.
func (l Loan) Payments() []Payment {
	if l.payments == nil {
		return nil
	}
	out := make([]Payment, len(l.payments))
	copy(out, l.payments)
	return out
}

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = nil
	return next
}

func copyEvents(evts []event.DomainEvent) []event.DomainEvent {
	if evts == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(evts))
	copy(out, evts)
	return out
}
