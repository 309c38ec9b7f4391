package model

import (
	"time"

	"github.com/meridianbank/lending/pkg/money"
)

// Payment is one received repayment applied against a loan. Payments are
// append-only: the allocator records them and nothing ever mutates or deletes
// them.
type Payment struct {
	ID         string
	Amount     money.Money
	ReceivedAt time.Time
	CreatedAt  time.Time
}
