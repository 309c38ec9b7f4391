package event

import (
	"time"

	"github.com/meridianbank/lending/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// LoanCreated is raised when a loan and its repayment schedule are created.
type LoanCreated struct {
	events.BaseEvent
	BorrowerID     string    `json:"borrower_id"`
	Principal      int64     `json:"principal"`
	Currency       string    `json:"currency"`
	TermCount      int       `json:"term_count"`
	ProcessingDate time.Time `json:"processing_date"`
	FirstDueDate   time.Time `json:"first_due_date"`
}

func NewLoanCreated(
	loanID, borrowerID string,
	principal int64, currency string,
	termCount int, processingDate, firstDueDate time.Time,
) LoanCreated {
	return LoanCreated{
		BaseEvent:      events.NewBaseEvent("lending.loan.created", loanID, "Loan"),
		BorrowerID:     borrowerID,
		Principal:      principal,
		Currency:       currency,
		TermCount:      termCount,
		ProcessingDate: processingDate,
		FirstDueDate:   firstDueDate,
	}
}

// PaymentReceived is raised when a repayment has been allocated across the
// loan's schedule.
type PaymentReceived struct {
	events.BaseEvent
	PaymentID          string    `json:"payment_id"`
	Amount             int64     `json:"amount"`
	Currency           string    `json:"currency"`
	OutstandingBalance int64     `json:"outstanding_balance"`
	InstallmentsRepaid int       `json:"installments_repaid"`
	ReceivedAt         time.Time `json:"received_at"`
}

func NewPaymentReceived(
	loanID, paymentID string,
	amount int64, currency string,
	outstandingBalance int64, installmentsRepaid int,
	receivedAt time.Time,
) PaymentReceived {
	return PaymentReceived{
		BaseEvent:          events.NewBaseEvent("lending.loan.payment_received", loanID, "Loan"),
		PaymentID:          paymentID,
		Amount:             amount,
		Currency:           currency,
		OutstandingBalance: outstandingBalance,
		InstallmentsRepaid: installmentsRepaid,
		ReceivedAt:         receivedAt,
	}
}

// LoanRepaid is raised when the outstanding balance reaches zero.
type LoanRepaid struct {
	events.BaseEvent
}

func NewLoanRepaid(loanID string) LoanRepaid {
	return LoanRepaid{
		BaseEvent: events.NewBaseEvent("lending.loan.repaid", loanID, "Loan"),
	}
}
