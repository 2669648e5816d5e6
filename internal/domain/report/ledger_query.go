package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shoplite/backend/internal/domain/ledger"
)

// Query describes how to aggregate one source ledger: which table, which
// date and amount columns, and which status predicate keeps voided or
// cancelled rows out of every sum. One generic accessor executes every
// report's aggregation through these descriptors instead of one
// hand-written query per report.
type Query struct {
	Table        string
	DateColumn   string
	AmountColumn string
	StatusColumn string   // empty means the ledger has no void flag
	Excluded     []string // status values that never count
}

// Ledger query descriptors for the four source ledgers.
var (
	QueryPurchases = Query{
		Table:        "purchases",
		DateColumn:   "purchase_date",
		AmountColumn: "total_amount",
		StatusColumn: "record_status",
		Excluded:     []string{string(ledger.RecordStatusVoided)},
	}
	QueryPayments = Query{
		Table:        "payments",
		DateColumn:   "pay_date",
		AmountColumn: "amount",
		StatusColumn: "status",
		Excluded:     []string{string(ledger.RecordStatusVoided)},
	}
	QueryOrders = Query{
		Table:        "orders",
		DateColumn:   "delivery_date",
		AmountColumn: "total_amount",
		StatusColumn: "order_status",
		Excluded:     []string{string(ledger.OrderStatusCancelled)},
	}
	QueryReceipts = Query{
		Table:        "receipts",
		DateColumn:   "received_date",
		AmountColumn: "amount",
		StatusColumn: "status",
		Excluded:     []string{string(ledger.RecordStatusVoided)},
	}
	QueryExpenses = Query{
		Table:        "expenses",
		DateColumn:   "expense_date",
		AmountColumn: "amount",
		StatusColumn: "status",
		Excluded:     []string{string(ledger.RecordStatusVoided)},
	}
	QuerySales = Query{
		Table:        "sales",
		DateColumn:   "sale_date",
		AmountColumn: "amount",
	}
)

// Window bounds a flow-mode aggregation: either a single accounting
// period (the grouping key fixed on each row at creation) or an explicit
// date range over the ledger's date column.
type Window struct {
	Period *ledger.Period
	Start  time.Time
	End    time.Time
}

// WindowForPeriod bounds a window to one accounting period.
func WindowForPeriod(p ledger.Period) Window {
	return Window{Period: &p}
}

// WindowForRange bounds a window to an inclusive date range.
func WindowForRange(start, end time.Time) Window {
	return Window{Start: start, End: end}
}

// Label returns the display label for the window.
func (w Window) Label() string {
	if w.Period != nil {
		return w.Period.String()
	}
	return w.Start.Format("2006-01-02") + " ~ " + w.End.Format("2006-01-02")
}

// Cutoff returns the snapshot instant for the window: the last moment of
// the period, or the end of an explicit range.
func (w Window) Cutoff() time.Time {
	if w.Period != nil {
		return w.Period.End()
	}
	return w.End
}

// OpenItemFilter scopes the per-record rows used by aging and snapshot
// calculations.
type OpenItemFilter struct {
	Cutoff   time.Time // zero means no cutoff
	PartyID  uuid.UUID // supplier or customer; Nil means all
	OnlyOpen bool      // drop fully settled records
}

// OpenItem is one open purchase or order with the settled amount already
// summed from its active payments or receipts. Balance clamping and
// bucket classification happen in the engine, not in SQL.
type OpenItem struct {
	ID            uuid.UUID
	PartyID       uuid.UUID
	PartyName     string
	Date          time.Time
	TotalAmount   decimal.Decimal
	SettledAmount decimal.Decimal
}

// CategoryAmount is a per-category expense total for one window.
type CategoryAmount struct {
	CategoryID  uuid.UUID       `json:"category_id"`
	Name        string          `json:"name"`
	AccountCode string          `json:"account_code"`
	IsSalary    bool            `json:"is_salary"`
	Amount      decimal.Decimal `json:"amount"`
}

// LedgerReader is the generic ledger accessor. Flow mode sums rows inside
// a window; snapshot mode sums rows dated at or before a cutoff. Voided
// and cancelled rows are excluded in SQL, and rows being summed are never
// paginated.
type LedgerReader interface {
	// Sum aggregates a ledger's amount column over a flow window.
	Sum(ctx context.Context, q Query, w Window) (decimal.Decimal, error)

	// SumThrough aggregates a ledger's amount column over all rows dated
	// at or before the cutoff (snapshot mode).
	SumThrough(ctx context.Context, q Query, cutoff time.Time) (decimal.Decimal, error)

	// ExpenseByCategory returns active expense totals per category for a
	// flow window, joined with the category master data.
	ExpenseByCategory(ctx context.Context, w Window) ([]CategoryAmount, error)

	// OpenPurchases returns active purchases with their active payment
	// sums, for payables aging and the balance-sheet AP figure.
	OpenPurchases(ctx context.Context, f OpenItemFilter) ([]OpenItem, error)

	// OpenOrders returns non-cancelled orders with their active receipt
	// sums, for receivables aging and the balance-sheet AR figure.
	OpenOrders(ctx context.Context, f OpenItemFilter) ([]OpenItem, error)
}
