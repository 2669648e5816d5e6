package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shoplite/backend/internal/domain/report"
)

// SnapshotService builds point-in-time statements. Each requested period
// is an independent snapshot at that period's end; history is replayed
// from the ledgers on every call, never stored.
type SnapshotService struct {
	reader report.LedgerReader
	logger *zap.Logger
	now    func() time.Time
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(reader report.LedgerReader, logger *zap.Logger) *SnapshotService {
	return &SnapshotService{reader: reader, logger: logger, now: time.Now}
}

// BalanceSheet computes one snapshot per requested period plus a grand
// total row. A storage failure degrades to a single zero total row.
func (s *SnapshotService) BalanceSheet(ctx context.Context, req PeriodRequest) ([]report.BalanceSheetRow, error) {
	windows, periods, err := resolveWindows(req, s.now())
	if err != nil {
		return nil, err
	}

	rows := make([]report.BalanceSheetRow, 0, len(windows))
	for _, w := range windows {
		row, err := s.snapshotAt(ctx, w)
		if err != nil {
			s.logger.Warn("balance sheet degraded to zero row", zap.Error(err))
			zero := report.BalanceSheetRow{Period: totalsLabelFor(periods)}
			return []report.BalanceSheetRow{zero}, nil
		}
		rows = append(rows, row)
	}
	return appendBalanceSheetTotals(rows, periods), nil
}

func (s *SnapshotService) snapshotAt(ctx context.Context, w report.Window) (report.BalanceSheetRow, error) {
	cutoff := w.Cutoff()

	receivable, err := s.openSum(ctx, s.reader.OpenOrders, cutoff)
	if err != nil {
		return report.BalanceSheetRow{}, err
	}
	payable, err := s.openSum(ctx, s.reader.OpenPurchases, cutoff)
	if err != nil {
		return report.BalanceSheetRow{}, err
	}
	cash, err := s.cashAt(ctx, cutoff)
	if err != nil {
		return report.BalanceSheetRow{}, err
	}

	assets := receivable.Add(cash)
	liabilities := payable
	return report.BalanceSheetRow{
		Period:             w.Label(),
		AccountsReceivable: receivable,
		Cash:               cash,
		TotalAssets:        assets,
		AccountsPayable:    payable,
		TotalLiabilities:   liabilities,
		Equity:             assets.Sub(liabilities),
	}, nil
}

// openSum totals the per-record clamped balances of open items at the
// cutoff. Clamping happens before summation, so overpayments never
// reduce the aggregate.
func (s *SnapshotService) openSum(ctx context.Context, fetch openItemsFunc, cutoff time.Time) (decimal.Decimal, error) {
	items, err := fetch(ctx, report.OpenItemFilter{Cutoff: cutoff, OnlyOpen: true})
	if err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(openBalance(item, s.logger))
	}
	return sum, nil
}

// cashAt replays every cash movement through the cutoff: retail sales
// and order receipts in, purchase payments and expenses out.
func (s *SnapshotService) cashAt(ctx context.Context, cutoff time.Time) (decimal.Decimal, error) {
	sales, err := s.reader.SumThrough(ctx, report.QuerySales, cutoff)
	if err != nil {
		return decimal.Zero, err
	}
	receipts, err := s.reader.SumThrough(ctx, report.QueryReceipts, cutoff)
	if err != nil {
		return decimal.Zero, err
	}
	payments, err := s.reader.SumThrough(ctx, report.QueryPayments, cutoff)
	if err != nil {
		return decimal.Zero, err
	}
	expenses, err := s.reader.SumThrough(ctx, report.QueryExpenses, cutoff)
	if err != nil {
		return decimal.Zero, err
	}
	return sales.Add(receipts).Sub(payments).Sub(expenses), nil
}
