package usecase

import (
	"github.com/meridianbank/lending/internal/application/dto"
	"github.com/meridianbank/lending/internal/domain/model"
)

func toLoanResponse(loan model.Loan) dto.LoanResponse {
	return dto.LoanResponse{
		ID:                 loan.ID(),
		BorrowerID:         loan.BorrowerID(),
		Principal:          loan.Principal().Amount(),
		Currency:           loan.Currency().Code(),
		TermCount:          loan.TermCount(),
		Status:             loan.Status().String(),
		OutstandingBalance: loan.Outstanding().Amount(),
		ProcessingDate:     loan.ProcessingDate(),
		Installments:       toInstallmentResponses(loan.Installments()),
		CreatedAt:          loan.CreatedAt(),
		UpdatedAt:          loan.UpdatedAt(),
	}
}

func toInstallmentResponses(installments []model.Installment) []dto.InstallmentResponse {
	out := make([]dto.InstallmentResponse, len(installments))
	for i, inst := range installments {
		out[i] = dto.InstallmentResponse{
			Sequence:    inst.Sequence,
			DueDate:     inst.DueDate,
			Amount:      inst.Amount.Amount(),
			Outstanding: inst.Outstanding.Amount(),
			Status:      inst.Status.String(),
		}
	}
	return out
}

func toPaymentRecordResponses(payments []model.Payment) []dto.PaymentRecordResponse {
	out := make([]dto.PaymentRecordResponse, len(payments))
	for i, p := range payments {
		out[i] = dto.PaymentRecordResponse{
			ID:         p.ID,
			Amount:     p.Amount.Amount(),
			Currency:   p.Amount.Currency().Code(),
			ReceivedAt: p.ReceivedAt,
			CreatedAt:  p.CreatedAt,
		}
	}
	return out
}
