package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shoplite/backend/internal/domain/shared"
)

// RecordStatus is the soft-delete marker shared by the voidable ledgers.
// Voided rows are retained for audit but contribute zero to every aggregate.
type RecordStatus string

const (
	RecordStatusActive RecordStatus = "ACTIVE"
	RecordStatusVoided RecordStatus = "VOIDED"
)

// IsValid checks if the status is a valid RecordStatus
func (s RecordStatus) IsValid() bool {
	return s == RecordStatusActive || s == RecordStatusVoided
}

// String returns the string representation of RecordStatus
func (s RecordStatus) String() string {
	return string(s)
}

// SettlementStatus tracks how much of a purchase has been paid.
// It is derived from the active payments applied to the purchase.
type SettlementStatus string

const (
	SettlementStatusPending SettlementStatus = "PENDING" // No payment applied
	SettlementStatusPartial SettlementStatus = "PARTIAL" // 0 < paid < total
	SettlementStatusPaid    SettlementStatus = "PAID"    // Fully paid
)

// IsValid checks if the status is a valid SettlementStatus
func (s SettlementStatus) IsValid() bool {
	switch s {
	case SettlementStatusPending, SettlementStatusPartial, SettlementStatusPaid:
		return true
	}
	return false
}

// String returns the string representation of SettlementStatus
func (s SettlementStatus) String() string {
	return string(s)
}

// Purchase is a supplier purchase on the payables ledger.
type Purchase struct {
	shared.BaseEntity
	SupplierID       uuid.UUID
	SupplierName     string
	TotalAmount      decimal.Decimal
	PaidAmount       decimal.Decimal
	Balance          decimal.Decimal
	PurchaseDate     time.Time
	AccountingPeriod Period
	RecordStatus     RecordStatus
	Status           SettlementStatus
}

// NewPurchase creates an active purchase; the accounting period is fixed
// from the purchase date and never changes afterwards.
func NewPurchase(supplierID uuid.UUID, supplierName string, total decimal.Decimal, purchaseDate time.Time) *Purchase {
	total = RoundMoney(total)
	return &Purchase{
		BaseEntity:       shared.NewBaseEntity(),
		SupplierID:       supplierID,
		SupplierName:     supplierName,
		TotalAmount:      total,
		PaidAmount:       decimal.Zero,
		Balance:          total,
		PurchaseDate:     purchaseDate,
		AccountingPeriod: PeriodOf(purchaseDate),
		RecordStatus:     RecordStatusActive,
		Status:           SettlementStatusPending,
	}
}

// IsVoided returns true if the purchase has been voided
func (p *Purchase) IsVoided() bool {
	return p.RecordStatus == RecordStatusVoided
}

// Recalculate recomputes paid amount, balance, and settlement status from
// the payments referencing this purchase. Voided payments contribute
// nothing. The balance is clamped at zero; an over-recorded payment is an
// upstream data-entry issue, not a negative liability.
func (p *Purchase) Recalculate(payments []Payment) {
	paid := decimal.Zero
	for _, pay := range payments {
		if pay.PurchaseID != p.ID || pay.Status != RecordStatusActive {
			continue
		}
		paid = paid.Add(pay.Amount)
	}
	p.PaidAmount = paid
	p.Balance = p.TotalAmount.Sub(paid)
	if p.Balance.IsNegative() {
		p.Balance = decimal.Zero
	}
	p.Status = DeriveSettlementStatus(p.TotalAmount, paid)
}

// DeriveSettlementStatus derives PENDING/PARTIAL/PAID from totals.
func DeriveSettlementStatus(total, paid decimal.Decimal) SettlementStatus {
	switch {
	case paid.LessThanOrEqual(decimal.Zero):
		return SettlementStatusPending
	case paid.LessThan(total):
		return SettlementStatusPartial
	default:
		return SettlementStatusPaid
	}
}
