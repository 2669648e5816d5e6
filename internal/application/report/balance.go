package report

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shoplite/backend/internal/domain/report"
)

// openBalance is the open amount of one purchase or order, clamped at
// zero per record before any summation. Overpaid records therefore never
// offset other records' balances. A negative computed balance means an
// over-recorded settlement upstream, so it is logged before the clamp.
func openBalance(item report.OpenItem, logger *zap.Logger) decimal.Decimal {
	balance := item.TotalAmount.Sub(item.SettledAmount)
	if balance.IsNegative() {
		logger.Warn("negative computed balance clamped to zero",
			zap.String("record_id", item.ID.String()),
			zap.String("party_id", item.PartyID.String()),
			zap.String("balance", balance.String()))
		return decimal.Zero
	}
	return balance
}
