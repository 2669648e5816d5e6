package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shoplite/backend/internal/domain/shared"
)

// Receipt is money received against a customer order.
type Receipt struct {
	shared.BaseEntity
	OrderID          uuid.UUID
	Amount           decimal.Decimal
	ReceivedDate     time.Time
	AccountingPeriod Period
	Status           RecordStatus
}

// NewReceipt creates an active receipt for an order.
func NewReceipt(orderID uuid.UUID, amount decimal.Decimal, receivedDate time.Time) *Receipt {
	return &Receipt{
		BaseEntity:       shared.NewBaseEntity(),
		OrderID:          orderID,
		Amount:           RoundMoney(amount),
		ReceivedDate:     receivedDate,
		AccountingPeriod: PeriodOf(receivedDate),
		Status:           RecordStatusActive,
	}
}

// IsVoided returns true if the receipt has been voided
func (r *Receipt) IsVoided() bool {
	return r.Status == RecordStatusVoided
}
