package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shoplite/backend/internal/domain/shared"
)

// PayMethod is how a retail sale was settled. All methods count as cash
// on hand for the balance sheet.
type PayMethod string

const (
	PayMethodCash   PayMethod = "CASH"
	PayMethodCard   PayMethod = "CARD"
	PayMethodMobile PayMethod = "MOBILE"
)

// IsValid checks if the pay method is valid
func (m PayMethod) IsValid() bool {
	switch m {
	case PayMethodCash, PayMethodCard, PayMethodMobile:
		return true
	}
	return false
}

// String returns the string representation of PayMethod
func (m PayMethod) String() string {
	return string(m)
}

// Sale is a point-of-sale retail sale. Retail sales have no void flag;
// corrections are entered as offsetting rows by the write path.
type Sale struct {
	shared.BaseEntity
	ProductID        uuid.UUID
	Amount           decimal.Decimal
	PayMethod        PayMethod
	SaleDate         time.Time
	AccountingPeriod Period
}

// NewSale creates a retail sale record.
func NewSale(productID uuid.UUID, amount decimal.Decimal, method PayMethod, saleDate time.Time) *Sale {
	return &Sale{
		BaseEntity:       shared.NewBaseEntity(),
		ProductID:        productID,
		Amount:           RoundMoney(amount),
		PayMethod:        method,
		SaleDate:         saleDate,
		AccountingPeriod: PeriodOf(saleDate),
	}
}
