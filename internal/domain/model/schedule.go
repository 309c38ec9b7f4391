package model

import (
	"time"

	"github.com/meridianbank/lending/internal/domain/valueobject"
	"github.com/meridianbank/lending/pkg/money"
)

// Installment is one scheduled repayment within a loan's amortization
// schedule. It is a value object owned by the Loan aggregate.
type Installment struct {
	DueDate     time.Time
	Amount      money.Money
	Outstanding money.Money
	Status      valueobject.InstallmentStatus
	Sequence    int
}

// GenerateSchedule produces the repayment schedule for a new loan: termCount
// installments, each due one month after the previous, the first one month
// after startDate.
//
// Each of the first termCount-1 installments carries the principal divided by
// the term count, rounded half away from zero. The last installment absorbs
// the running remainder so the installment amounts always sum to the
// principal exactly. Outstanding starts equal to the amount and the status
// starts DUE.
func GenerateSchedule(principal money.Money, termCount int, startDate time.Time) []Installment {
	if termCount <= 0 || !principal.IsPositive() {
		return nil
	}

	share := principal.DivRound(int64(termCount))

	schedule := make([]Installment, 0, termCount)
	var assigned int64
	for seq := 1; seq <= termCount; seq++ {
		amount := share
		if seq == termCount {
			// Remainder, not an independent rounding of the share.
			amount = money.New(principal.Amount()-assigned, principal.Currency())
		}
		assigned += amount.Amount()

		schedule = append(schedule, Installment{
			Sequence:    seq,
			DueDate:     startDate.AddDate(0, seq, 0),
			Amount:      amount,
			Outstanding: amount,
			Status:      valueobject.InstallmentStatusDue,
		})
	}

	return schedule
}
