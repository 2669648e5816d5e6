package report

import (
	"github.com/shopspring/decimal"
)

// BalanceSheetRow is a point-in-time snapshot at the end of one period.
// Equity is the residual of assets over liabilities; the ledgers carry no
// contributed capital.
type BalanceSheetRow struct {
	Period             string          `json:"period"`
	AccountsReceivable decimal.Decimal `json:"accounts_receivable"`
	Cash               decimal.Decimal `json:"cash"`
	TotalAssets        decimal.Decimal `json:"total_assets"`
	AccountsPayable    decimal.Decimal `json:"accounts_payable"`
	TotalLiabilities   decimal.Decimal `json:"total_liabilities"`
	Equity             decimal.Decimal `json:"equity"`
}

// CashFlowRow is one period's cash movement. Inflow counts retail sales
// and order receipts; outflow counts purchase payments and expenses.
type CashFlowRow struct {
	Period        string          `json:"period"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalReceipts decimal.Decimal `json:"total_receipts"`
	TotalInflow   decimal.Decimal `json:"total_inflow"`
	TotalPayments decimal.Decimal `json:"total_payments"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalOutflow  decimal.Decimal `json:"total_outflow"`
	NetCashFlow   decimal.Decimal `json:"net_cash_flow"`
}

// IncomeStatementRow is one period's comprehensive income statement.
// OtherIncome, OtherExpenses, and OtherComprehensiveIncome are reserved
// lines the ledgers cannot populate yet; they stay zero so the statement
// shape is stable when those sources arrive.
type IncomeStatementRow struct {
	Period                   string           `json:"period"`
	RetailSales              decimal.Decimal  `json:"retail_sales"`
	OrderSales               decimal.Decimal  `json:"order_sales"`
	TotalRevenue             decimal.Decimal  `json:"total_revenue"`
	CostOfGoodsSold          decimal.Decimal  `json:"cost_of_goods_sold"`
	GrossProfit              decimal.Decimal  `json:"gross_profit"`
	ExpenseDetails           []CategoryAmount `json:"expense_details"`
	TotalOperatingExpenses   decimal.Decimal  `json:"total_operating_expenses"`
	OperatingProfit          decimal.Decimal  `json:"operating_profit"`
	OtherIncome              decimal.Decimal  `json:"other_income"`
	OtherExpenses            decimal.Decimal  `json:"other_expenses"`
	NetProfit                decimal.Decimal  `json:"net_profit"`
	OtherComprehensiveIncome decimal.Decimal  `json:"other_comprehensive_income"`
	ComprehensiveIncome      decimal.Decimal  `json:"comprehensive_income"`
}
