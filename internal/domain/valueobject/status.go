package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// LoanStatus – immutable value object
// ---------------------------------------------------------------------------

// LoanStatus represents the repayment state of a loan.
type LoanStatus struct {
	value string
}

const (
	loanStatusDue    = "DUE"
	loanStatusRepaid = "REPAID"
)

var (
	LoanStatusDue    = LoanStatus{value: loanStatusDue}
	LoanStatusRepaid = LoanStatus{value: loanStatusRepaid}
)

var validLoanStatuses = map[string]LoanStatus{
	loanStatusDue:    LoanStatusDue,
	loanStatusRepaid: LoanStatusRepaid,
}

// NewLoanStatus creates a LoanStatus from a raw string.
func NewLoanStatus(s string) (LoanStatus, error) {
	v, ok := validLoanStatuses[s]
	if !ok {
		return LoanStatus{}, fmt.Errorf("invalid loan status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s LoanStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LoanStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LoanStatus) Equal(other LoanStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// InstallmentStatus – immutable value object
// ---------------------------------------------------------------------------

// InstallmentStatus represents the repayment state of one scheduled installment.
type InstallmentStatus struct {
	value string
}

const (
	installmentStatusDue     = "DUE"
	installmentStatusPartial = "PARTIAL"
	installmentStatusRepaid  = "REPAID"
)

var (
	InstallmentStatusDue     = InstallmentStatus{value: installmentStatusDue}
	InstallmentStatusPartial = InstallmentStatus{value: installmentStatusPartial}
	InstallmentStatusRepaid  = InstallmentStatus{value: installmentStatusRepaid}
)

var validInstallmentStatuses = map[string]InstallmentStatus{
	installmentStatusDue:     InstallmentStatusDue,
	installmentStatusPartial: InstallmentStatusPartial,
	installmentStatusRepaid:  InstallmentStatusRepaid,
}

// NewInstallmentStatus creates an InstallmentStatus from a raw string.
func NewInstallmentStatus(s string) (InstallmentStatus, error) {
	v, ok := validInstallmentStatuses[s]
	if !ok {
		return InstallmentStatus{}, fmt.Errorf("invalid installment status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s InstallmentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s InstallmentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s InstallmentStatus) Equal(other InstallmentStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	// ErrLoanRepaid is returned when a payment targets a loan that is
	// already settled in full.
	ErrLoanRepaid = errors.New("loan is already repaid")
)
