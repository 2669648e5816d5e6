package report

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shoplite/backend/internal/domain/report"
)

// FlowService builds period-keyed movement statements: the cash flow
// statement and the comprehensive income statement. Rows group by the
// accounting period fixed on each ledger row at creation, so late
// entries stay in the period they were booked under.
type FlowService struct {
	reader report.LedgerReader
	logger *zap.Logger
	now    func() time.Time
}

// NewFlowService creates a new FlowService.
func NewFlowService(reader report.LedgerReader, logger *zap.Logger) *FlowService {
	return &FlowService{reader: reader, logger: logger, now: time.Now}
}

// CashFlow computes one row per requested window plus a grand total row.
// A storage failure degrades to a single zero total row.
func (s *FlowService) CashFlow(ctx context.Context, req PeriodRequest) ([]report.CashFlowRow, error) {
	windows, periods, err := resolveWindows(req, s.now())
	if err != nil {
		return nil, err
	}

	rows := make([]report.CashFlowRow, 0, len(windows))
	for _, w := range windows {
		row, err := s.cashFlowFor(ctx, w)
		if err != nil {
			s.logger.Warn("cash flow degraded to zero row", zap.Error(err))
			zero := report.CashFlowRow{Period: totalsLabelFor(periods)}
			return []report.CashFlowRow{zero}, nil
		}
		rows = append(rows, row)
	}
	return appendCashFlowTotals(rows, periods), nil
}

// IncomeStatement computes one comprehensive income row per requested
// window plus a grand total row with merged expense lines.
func (s *FlowService) IncomeStatement(ctx context.Context, req PeriodRequest) ([]report.IncomeStatementRow, error) {
	windows, periods, err := resolveWindows(req, s.now())
	if err != nil {
		return nil, err
	}

	rows := make([]report.IncomeStatementRow, 0, len(windows))
	for _, w := range windows {
		row, err := s.incomeFor(ctx, w)
		if err != nil {
			s.logger.Warn("income statement degraded to zero row", zap.Error(err))
			zero := report.IncomeStatementRow{Period: totalsLabelFor(periods)}
			return []report.IncomeStatementRow{zero}, nil
		}
		rows = append(rows, row)
	}
	return appendIncomeTotals(rows, periods), nil
}

func (s *FlowService) cashFlowFor(ctx context.Context, w report.Window) (report.CashFlowRow, error) {
	sales, err := s.reader.Sum(ctx, report.QuerySales, w)
	if err != nil {
		return report.CashFlowRow{}, err
	}
	receipts, err := s.reader.Sum(ctx, report.QueryReceipts, w)
	if err != nil {
		return report.CashFlowRow{}, err
	}
	payments, err := s.reader.Sum(ctx, report.QueryPayments, w)
	if err != nil {
		return report.CashFlowRow{}, err
	}
	expenses, err := s.reader.Sum(ctx, report.QueryExpenses, w)
	if err != nil {
		return report.CashFlowRow{}, err
	}

	inflow := sales.Add(receipts)
	outflow := payments.Add(expenses)
	return report.CashFlowRow{
		Period:        w.Label(),
		TotalSales:    sales,
		TotalReceipts: receipts,
		TotalInflow:   inflow,
		TotalPayments: payments,
		TotalExpenses: expenses,
		TotalOutflow:  outflow,
		NetCashFlow:   inflow.Sub(outflow),
	}, nil
}

func (s *FlowService) incomeFor(ctx context.Context, w report.Window) (report.IncomeStatementRow, error) {
	retail, err := s.reader.Sum(ctx, report.QuerySales, w)
	if err != nil {
		return report.IncomeStatementRow{}, err
	}
	orderSales, err := s.reader.Sum(ctx, report.QueryOrders, w)
	if err != nil {
		return report.IncomeStatementRow{}, err
	}
	cogs, err := s.reader.Sum(ctx, report.QueryPurchases, w)
	if err != nil {
		return report.IncomeStatementRow{}, err
	}
	details, err := s.reader.ExpenseByCategory(ctx, w)
	if err != nil {
		return report.IncomeStatementRow{}, err
	}

	row := report.IncomeStatementRow{
		Period:         w.Label(),
		RetailSales:    retail,
		OrderSales:     orderSales,
		ExpenseDetails: details,
	}
	row.TotalRevenue = retail.Add(orderSales)
	row.CostOfGoodsSold = cogs
	row.GrossProfit = row.TotalRevenue.Sub(cogs)
	for _, line := range details {
		row.TotalOperatingExpenses = row.TotalOperatingExpenses.Add(line.Amount)
	}
	row.OperatingProfit = row.GrossProfit.Sub(row.TotalOperatingExpenses)
	// Other income and other expenses have no ledger source yet; the
	// reserved lines stay zero so the statement adds up.
	row.NetProfit = row.OperatingProfit.Add(row.OtherIncome).Sub(row.OtherExpenses)
	row.ComprehensiveIncome = row.NetProfit.Add(row.OtherComprehensiveIncome)
	return row, nil
}
