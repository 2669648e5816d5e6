package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPurchase_Recalculate(t *testing.T) {
	purchaseDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("voided payments contribute nothing", func(t *testing.T) {
		p := NewPurchase(uuid.New(), "Acme Supplies", decimal.RequireFromString("1000.00"), purchaseDate)

		active := NewPayment(p.ID, decimal.RequireFromString("400.00"), purchaseDate.AddDate(0, 0, 5))
		voided := NewPayment(p.ID, decimal.RequireFromString("100.00"), purchaseDate.AddDate(0, 0, 6))
		voided.Status = RecordStatusVoided

		p.Recalculate([]Payment{*active, *voided})

		assert.True(t, p.Balance.Equal(decimal.RequireFromString("600.00")), "balance = %s", p.Balance)
		assert.True(t, p.PaidAmount.Equal(decimal.RequireFromString("400.00")))
		assert.Equal(t, SettlementStatusPartial, p.Status)
	})

	t.Run("payments for other purchases are ignored", func(t *testing.T) {
		p := NewPurchase(uuid.New(), "Acme Supplies", decimal.RequireFromString("500.00"), purchaseDate)
		other := NewPayment(uuid.New(), decimal.RequireFromString("500.00"), purchaseDate)

		p.Recalculate([]Payment{*other})

		assert.True(t, p.Balance.Equal(decimal.RequireFromString("500.00")))
		assert.Equal(t, SettlementStatusPending, p.Status)
	})

	t.Run("over-recorded payment clamps balance at zero", func(t *testing.T) {
		p := NewPurchase(uuid.New(), "Acme Supplies", decimal.RequireFromString("300.00"), purchaseDate)
		over := NewPayment(p.ID, decimal.RequireFromString("350.00"), purchaseDate)

		p.Recalculate([]Payment{*over})

		assert.True(t, p.Balance.IsZero())
		assert.Equal(t, SettlementStatusPaid, p.Status)
	})

	t.Run("fully paid", func(t *testing.T) {
		p := NewPurchase(uuid.New(), "Acme Supplies", decimal.RequireFromString("300.00"), purchaseDate)
		pay := NewPayment(p.ID, decimal.RequireFromString("300.00"), purchaseDate)

		p.Recalculate([]Payment{*pay})

		assert.True(t, p.Balance.IsZero())
		assert.Equal(t, SettlementStatusPaid, p.Status)
	})
}

func TestDeriveSettlementStatus(t *testing.T) {
	total := decimal.RequireFromString("100.00")

	assert.Equal(t, SettlementStatusPending, DeriveSettlementStatus(total, decimal.Zero))
	assert.Equal(t, SettlementStatusPartial, DeriveSettlementStatus(total, decimal.RequireFromString("0.01")))
	assert.Equal(t, SettlementStatusPartial, DeriveSettlementStatus(total, decimal.RequireFromString("99.99")))
	assert.Equal(t, SettlementStatusPaid, DeriveSettlementStatus(total, total))
	assert.Equal(t, SettlementStatusPaid, DeriveSettlementStatus(total, decimal.RequireFromString("150.00")))
}

func TestNewPurchase_FixesAccountingPeriod(t *testing.T) {
	p := NewPurchase(uuid.New(), "Acme Supplies", decimal.RequireFromString("42.00"), time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, Period("2025-01"), p.AccountingPeriod)
	assert.Equal(t, RecordStatusActive, p.RecordStatus)
}
