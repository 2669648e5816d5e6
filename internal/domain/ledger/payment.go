package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shoplite/backend/internal/domain/shared"
)

// Payment is a payment made against a purchase on the payables ledger.
type Payment struct {
	shared.BaseEntity
	PurchaseID       uuid.UUID
	Amount           decimal.Decimal
	PayDate          time.Time
	AccountingPeriod Period
	Status           RecordStatus
}

// NewPayment creates an active payment for a purchase.
func NewPayment(purchaseID uuid.UUID, amount decimal.Decimal, payDate time.Time) *Payment {
	return &Payment{
		BaseEntity:       shared.NewBaseEntity(),
		PurchaseID:       purchaseID,
		Amount:           RoundMoney(amount),
		PayDate:          payDate,
		AccountingPeriod: PeriodOf(payDate),
		Status:           RecordStatusActive,
	}
}

// IsVoided returns true if the payment has been voided
func (p *Payment) IsVoided() bool {
	return p.Status == RecordStatusVoided
}
