package dto

import "time"

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateLoanRequest carries the data needed to open a new loan.
// Principal is expressed in the currency's minor units.
type CreateLoanRequest struct {
	BorrowerID     string    `json:"borrower_id"`
	Principal      int64     `json:"principal"`
	Currency       string    `json:"currency"`
	TermCount      int       `json:"term_count"`
	ProcessingDate time.Time `json:"processing_date"`
}

// ApplyPaymentRequest carries the data for a loan repayment.
type ApplyPaymentRequest struct {
	LoanID     string    `json:"loan_id"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency"`
	ReceivedAt time.Time `json:"received_at"`
}

// GetLoanRequest identifies a loan to retrieve.
type GetLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// ListLoansRequest identifies the borrower whose loans to list.
type ListLoansRequest struct {
	BorrowerID string `json:"borrower_id"`
}

// ListInstallmentsRequest identifies the loan whose schedule to list.
type ListInstallmentsRequest struct {
	LoanID string `json:"loan_id"`
}

// ListPaymentsRequest identifies the loan whose payments to list.
type ListPaymentsRequest struct {
	LoanID string `json:"loan_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// InstallmentResponse represents a single schedule entry.
type InstallmentResponse struct {
	Sequence    int       `json:"sequence"`
	DueDate     time.Time `json:"due_date"`
	Amount      int64     `json:"amount"`
	Outstanding int64     `json:"outstanding"`
	Status      string    `json:"status"`
}

// PaymentRecordResponse represents a recorded repayment.
type PaymentRecordResponse struct {
	ID         string    `json:"id"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency"`
	ReceivedAt time.Time `json:"received_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoanResponse is the external representation of a loan.
type LoanResponse struct {
	ID                 string                `json:"id"`
	BorrowerID         string                `json:"borrower_id"`
	Principal          int64                 `json:"principal"`
	Currency           string                `json:"currency"`
	TermCount          int                   `json:"term_count"`
	Status             string                `json:"status"`
	OutstandingBalance int64                 `json:"outstanding_balance"`
	ProcessingDate     time.Time             `json:"processing_date"`
	Installments       []InstallmentResponse `json:"installments,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// PaymentResponse is the external representation of a payment result.
type PaymentResponse struct {
	LoanID             string                `json:"loan_id"`
	AmountPaid         int64                 `json:"amount_paid"`
	Currency           string                `json:"currency"`
	OutstandingBalance int64                 `json:"outstanding_balance"`
	LoanStatus         string                `json:"loan_status"`
	Installments       []InstallmentResponse `json:"installments"`
}
