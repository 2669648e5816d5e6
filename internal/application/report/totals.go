package report

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shoplite/backend/internal/domain/ledger"
	"github.com/shoplite/backend/internal/domain/report"
)

// TotalsLabel marks the synthesized grand-total row of a multi-row
// report.
const TotalsLabel = "合計"

// totalsLabelFor builds the totals label for a report covering the given
// periods. Multi-period reports carry the covered range as a suffix.
func totalsLabelFor(periods []ledger.Period) string {
	if len(periods) > 1 {
		return TotalsLabel + " (" + periods[0].String() + " ~ " + periods[len(periods)-1].String() + ")"
	}
	return TotalsLabel
}

func isTotalsRow(label string) bool {
	return strings.HasPrefix(label, TotalsLabel)
}

// appendAgingTotals appends one grand-total row summing every bucket and
// amount column. A slice that already ends in a totals row is returned
// unchanged, so re-running the synthesizer never stacks totals.
func appendAgingTotals(rows []report.AgingSummaryRow, scheme BucketScheme) []report.AgingSummaryRow {
	for _, r := range rows {
		if isTotalsRow(r.PartyName) {
			return rows
		}
	}

	labels := scheme.Labels()
	buckets := make([]report.BucketTotal, len(labels))
	for i, l := range labels {
		buckets[i] = report.BucketTotal{Bucket: l, Amount: decimal.Zero}
	}
	total := report.AgingSummaryRow{
		PartyID:       uuid.Nil,
		PartyName:     TotalsLabel,
		Buckets:       buckets,
		TotalAmount:   decimal.Zero,
		SettledAmount: decimal.Zero,
		Balance:       decimal.Zero,
	}
	for _, r := range rows {
		for i, b := range r.Buckets {
			total.Buckets[i].Amount = total.Buckets[i].Amount.Add(b.Amount)
		}
		total.TotalAmount = total.TotalAmount.Add(r.TotalAmount)
		total.SettledAmount = total.SettledAmount.Add(r.SettledAmount)
		total.Balance = total.Balance.Add(r.Balance)
	}
	return append(rows, total)
}

// appendBalanceSheetTotals appends one column-wise total row across the
// per-period snapshots.
func appendBalanceSheetTotals(rows []report.BalanceSheetRow, periods []ledger.Period) []report.BalanceSheetRow {
	for _, r := range rows {
		if isTotalsRow(r.Period) {
			return rows
		}
	}
	total := report.BalanceSheetRow{Period: totalsLabelFor(periods)}
	for _, r := range rows {
		total.AccountsReceivable = total.AccountsReceivable.Add(r.AccountsReceivable)
		total.Cash = total.Cash.Add(r.Cash)
		total.TotalAssets = total.TotalAssets.Add(r.TotalAssets)
		total.AccountsPayable = total.AccountsPayable.Add(r.AccountsPayable)
		total.TotalLiabilities = total.TotalLiabilities.Add(r.TotalLiabilities)
		total.Equity = total.Equity.Add(r.Equity)
	}
	return append(rows, total)
}

// appendCashFlowTotals appends one column-wise total row across the
// per-period cash flows.
func appendCashFlowTotals(rows []report.CashFlowRow, periods []ledger.Period) []report.CashFlowRow {
	for _, r := range rows {
		if isTotalsRow(r.Period) {
			return rows
		}
	}
	total := report.CashFlowRow{Period: totalsLabelFor(periods)}
	for _, r := range rows {
		total.TotalSales = total.TotalSales.Add(r.TotalSales)
		total.TotalReceipts = total.TotalReceipts.Add(r.TotalReceipts)
		total.TotalInflow = total.TotalInflow.Add(r.TotalInflow)
		total.TotalPayments = total.TotalPayments.Add(r.TotalPayments)
		total.TotalExpenses = total.TotalExpenses.Add(r.TotalExpenses)
		total.TotalOutflow = total.TotalOutflow.Add(r.TotalOutflow)
		total.NetCashFlow = total.NetCashFlow.Add(r.NetCashFlow)
	}
	return append(rows, total)
}

// appendIncomeTotals appends one column-wise total row across the
// per-period income statements. Expense detail lines are merged by
// category so the total row carries one line per category.
func appendIncomeTotals(rows []report.IncomeStatementRow, periods []ledger.Period) []report.IncomeStatementRow {
	for _, r := range rows {
		if isTotalsRow(r.Period) {
			return rows
		}
	}
	total := report.IncomeStatementRow{Period: totalsLabelFor(periods)}
	merged := make(map[uuid.UUID]int)
	for _, r := range rows {
		total.RetailSales = total.RetailSales.Add(r.RetailSales)
		total.OrderSales = total.OrderSales.Add(r.OrderSales)
		total.TotalRevenue = total.TotalRevenue.Add(r.TotalRevenue)
		total.CostOfGoodsSold = total.CostOfGoodsSold.Add(r.CostOfGoodsSold)
		total.GrossProfit = total.GrossProfit.Add(r.GrossProfit)
		total.TotalOperatingExpenses = total.TotalOperatingExpenses.Add(r.TotalOperatingExpenses)
		total.OperatingProfit = total.OperatingProfit.Add(r.OperatingProfit)
		total.OtherIncome = total.OtherIncome.Add(r.OtherIncome)
		total.OtherExpenses = total.OtherExpenses.Add(r.OtherExpenses)
		total.NetProfit = total.NetProfit.Add(r.NetProfit)
		total.OtherComprehensiveIncome = total.OtherComprehensiveIncome.Add(r.OtherComprehensiveIncome)
		total.ComprehensiveIncome = total.ComprehensiveIncome.Add(r.ComprehensiveIncome)
		for _, line := range r.ExpenseDetails {
			if i, ok := merged[line.CategoryID]; ok {
				total.ExpenseDetails[i].Amount = total.ExpenseDetails[i].Amount.Add(line.Amount)
				continue
			}
			merged[line.CategoryID] = len(total.ExpenseDetails)
			total.ExpenseDetails = append(total.ExpenseDetails, line)
		}
	}
	return append(rows, total)
}
