package grpc

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/meridianbank/lending/internal/application/dto"
	"github.com/meridianbank/lending/internal/application/usecase"
	"github.com/meridianbank/lending/internal/domain/port"
	"github.com/meridianbank/lending/internal/domain/valueobject"
)

var currencyCodeRE = regexp.MustCompile(`^[A-Z]{3}$`)

// Compile-time assertion that LendingHandler implements LendingServiceServer.
var _ LendingServiceServer = (*LendingHandler)(nil)

// LendingHandler implements the gRPC LendingService server.
type LendingHandler struct {
	UnimplementedLendingServiceServer
	createLoan       *usecase.CreateLoanUseCase
	applyPayment     *usecase.ApplyPaymentUseCase
	getLoan          *usecase.GetLoanUseCase
	listInstallments *usecase.ListInstallmentsUseCase
	listPayments     *usecase.ListPaymentsUseCase

	logger *slog.Logger
}

func NewLendingHandler(
	createLoan *usecase.CreateLoanUseCase,
	applyPayment *usecase.ApplyPaymentUseCase,
	getLoan *usecase.GetLoanUseCase,
	listInstallments *usecase.ListInstallmentsUseCase,
	listPayments *usecase.ListPaymentsUseCase,
	logger *slog.Logger,
) *LendingHandler {
	return &LendingHandler{
		createLoan:       createLoan,
		applyPayment:     applyPayment,
		getLoan:          getLoan,
		listInstallments: listInstallments,
		listPayments:     listPayments,

		logger: logger}
}

// Temporary gRPC message types until proto generation is wired.
// Amounts are minor units of the loan currency.

type CreateLoanRequestMsg struct {
	BorrowerID     string `json:"borrower_id"`
	Principal      int64  `json:"principal"`
	Currency       string `json:"currency"`
	TermCount      int32  `json:"term_count"`
	ProcessingDate string `json:"processing_date"`
}

type InstallmentMsg struct {
	Sequence    int32  `json:"sequence"`
	DueDate     string `json:"due_date"`
	Amount      int64  `json:"amount"`
	Outstanding int64  `json:"outstanding"`
	Status      string `json:"status"`
}

type LoanMsg struct {
	ID                 string            `json:"id"`
	BorrowerID         string            `json:"borrower_id"`
	Principal          int64             `json:"principal"`
	Currency           string            `json:"currency"`
	TermCount          int32             `json:"term_count"`
	Status             string            `json:"status"`
	OutstandingBalance int64             `json:"outstanding_balance"`
	ProcessingDate     string            `json:"processing_date"`
	Installments       []*InstallmentMsg `json:"installments,omitempty"`
	CreatedAt          string            `json:"created_at"`
	UpdatedAt          string            `json:"updated_at"`
}

type CreateLoanResponseMsg struct {
	Loan *LoanMsg `json:"loan"`
}

type GetLoanRequestMsg struct {
	LoanID string `json:"loan_id"`
}

type GetLoanResponseMsg struct {
	Loan *LoanMsg `json:"loan"`
}

type ApplyPaymentRequestMsg struct {
	LoanID     string `json:"loan_id"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	ReceivedAt string `json:"received_at"`
}

type ApplyPaymentResponseMsg struct {
	LoanID             string            `json:"loan_id"`
	AmountPaid         int64             `json:"amount_paid"`
	Currency           string            `json:"currency"`
	OutstandingBalance int64             `json:"outstanding_balance"`
	LoanStatus         string            `json:"loan_status"`
	Installments       []*InstallmentMsg `json:"installments"`
}

type ListInstallmentsRequestMsg struct {
	LoanID string `json:"loan_id"`
}

type ListInstallmentsResponseMsg struct {
	Installments []*InstallmentMsg `json:"installments"`
}

type ListPaymentsRequestMsg struct {
	LoanID string `json:"loan_id"`
}

type PaymentMsg struct {
	ID         string `json:"id"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	ReceivedAt string `json:"received_at"`
	CreatedAt  string `json:"created_at"`
}

type ListPaymentsResponseMsg struct {
	Payments []*PaymentMsg `json:"payments"`
}

func (h *LendingHandler) CreateLoan(ctx context.Context, req *CreateLoanRequestMsg) (*CreateLoanResponseMsg, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.BorrowerID == "" {
		return nil, status.Error(codes.InvalidArgument, "borrower_id is required")
	}
	if req.Principal <= 0 {
		return nil, status.Error(codes.InvalidArgument, "principal must be positive")
	}
	if !currencyCodeRE.MatchString(req.Currency) {
		return nil, status.Error(codes.InvalidArgument, "currency must be a 3-letter uppercase ISO code")
	}
	if req.TermCount <= 0 {
		return nil, status.Error(codes.InvalidArgument, "term_count must be positive")
	}
	processingDate, err := time.Parse(time.RFC3339, req.ProcessingDate)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid processing_date: %v", err)
	}

	result, err := h.createLoan.Execute(ctx, dto.CreateLoanRequest{
		BorrowerID:     req.BorrowerID,
		Principal:      req.Principal,
		Currency:       req.Currency,
		TermCount:      int(req.TermCount),
		ProcessingDate: processingDate,
	})
	if err != nil {
		return nil, h.toStatusError(err)
	}

	return &CreateLoanResponseMsg{Loan: toLoanMsg(result)}, nil
}

func (h *LendingHandler) GetLoan(ctx context.Context, req *GetLoanRequestMsg) (*GetLoanResponseMsg, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.LoanID == "" {
		return nil, status.Error(codes.InvalidArgument, "loan_id is required")
	}

	result, err := h.getLoan.Execute(ctx, dto.GetLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, h.toStatusError(err)
	}

	return &GetLoanResponseMsg{Loan: toLoanMsg(result)}, nil
}

func (h *LendingHandler) ApplyPayment(ctx context.Context, req *ApplyPaymentRequestMsg) (*ApplyPaymentResponseMsg, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.LoanID == "" {
		return nil, status.Error(codes.InvalidArgument, "loan_id is required")
	}
	if req.Amount <= 0 {
		return nil, status.Error(codes.InvalidArgument, "amount must be positive")
	}
	if !currencyCodeRE.MatchString(req.Currency) {
		return nil, status.Error(codes.InvalidArgument, "currency must be a 3-letter uppercase ISO code")
	}
	receivedAt, err := time.Parse(time.RFC3339, req.ReceivedAt)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid received_at: %v", err)
	}

	result, err := h.applyPayment.Execute(ctx, dto.ApplyPaymentRequest{
		LoanID:     req.LoanID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		ReceivedAt: receivedAt,
	})
	if err != nil {
		return nil, h.toStatusError(err)
	}

	return &ApplyPaymentResponseMsg{
		LoanID:             result.LoanID,
		AmountPaid:         result.AmountPaid,
		Currency:           result.Currency,
		OutstandingBalance: result.OutstandingBalance,
		LoanStatus:         result.LoanStatus,
		Installments:       toInstallmentMsgs(result.Installments),
	}, nil
}

func (h *LendingHandler) ListInstallments(ctx context.Context, req *ListInstallmentsRequestMsg) (*ListInstallmentsResponseMsg, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.LoanID == "" {
		return nil, status.Error(codes.InvalidArgument, "loan_id is required")
	}

	result, err := h.listInstallments.Execute(ctx, dto.ListInstallmentsRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, h.toStatusError(err)
	}

	return &ListInstallmentsResponseMsg{Installments: toInstallmentMsgs(result)}, nil
}

func (h *LendingHandler) ListPayments(ctx context.Context, req *ListPaymentsRequestMsg) (*ListPaymentsResponseMsg, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.LoanID == "" {
		return nil, status.Error(codes.InvalidArgument, "loan_id is required")
	}

	result, err := h.listPayments.Execute(ctx, dto.ListPaymentsRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, h.toStatusError(err)
	}

	payments := make([]*PaymentMsg, 0, len(result))
	for _, p := range result {
		payments = append(payments, &PaymentMsg{
			ID:         p.ID,
			Amount:     p.Amount,
			Currency:   p.Currency,
			ReceivedAt: p.ReceivedAt.Format(time.RFC3339),
			CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		})
	}
	return &ListPaymentsResponseMsg{Payments: payments}, nil
}

// toStatusError maps use-case failures onto gRPC status codes.
func (h *LendingHandler) toStatusError(err error) error {
	switch {
	case errors.Is(err, port.ErrLoanNotFound):
		return status.Error(codes.NotFound, "loan not found")
	case errors.Is(err, valueobject.ErrLoanRepaid):
		return status.Error(codes.FailedPrecondition, "loan is already repaid")
	default:
		h.logger.Error("handler error", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func toLoanMsg(r dto.LoanResponse) *LoanMsg {
	return &LoanMsg{
		ID:                 r.ID,
		BorrowerID:         r.BorrowerID,
		Principal:          r.Principal,
		Currency:           r.Currency,
		TermCount:          int32(r.TermCount), //nolint:gosec // bounded
		Status:             r.Status,
		OutstandingBalance: r.OutstandingBalance,
		ProcessingDate:     r.ProcessingDate.Format(time.RFC3339),
		Installments:       toInstallmentMsgs(r.Installments),
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          r.UpdatedAt.Format(time.RFC3339),
	}
}

func toInstallmentMsgs(installments []dto.InstallmentResponse) []*InstallmentMsg {
	msgs := make([]*InstallmentMsg, 0, len(installments))
	for _, inst := range installments {
		msgs = append(msgs, &InstallmentMsg{
			Sequence:    int32(inst.Sequence), //nolint:gosec // bounded
			DueDate:     inst.DueDate.Format(time.RFC3339),
			Amount:      inst.Amount,
			Outstanding: inst.Outstanding,
			Status:      inst.Status,
		})
	}
	return msgs
}
