package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shoplite/backend/internal/domain/report"
)

// GormLedgerReader implements report.LedgerReader using GORM. One reader
// serves every ledger through the query descriptors; nothing here is
// cached or materialized, each call replays the ledgers.
type GormLedgerReader struct {
	db *gorm.DB
}

// NewGormLedgerReader creates a new GormLedgerReader
func NewGormLedgerReader(db *gorm.DB) *GormLedgerReader {
	return &GormLedgerReader{db: db}
}

// Sum aggregates a ledger's amount column over a flow window. Period
// windows filter on the stored accounting_period column so rows stay in
// the period they were booked under.
func (r *GormLedgerReader) Sum(ctx context.Context, q report.Query, w report.Window) (decimal.Decimal, error) {
	query := r.scoped(ctx, q).
		Select("COALESCE(SUM(" + q.AmountColumn + "), 0)")
	if w.Period != nil {
		query = query.Where("accounting_period = ?", w.Period.String())
	} else {
		query = query.Where(q.DateColumn+" BETWEEN ? AND ?", w.Start, w.End)
	}

	var sum decimal.Decimal
	if err := query.Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// SumThrough aggregates a ledger's amount column over all rows dated at
// or before the cutoff (snapshot mode).
func (r *GormLedgerReader) SumThrough(ctx context.Context, q report.Query, cutoff time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.scoped(ctx, q).
		Select("COALESCE(SUM("+q.AmountColumn+"), 0)").
		Where(q.DateColumn+" <= ?", cutoff).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// ExpenseByCategory returns active expense totals per category for a
// flow window, ordered by account code.
func (r *GormLedgerReader) ExpenseByCategory(ctx context.Context, w report.Window) ([]report.CategoryAmount, error) {
	q := report.QueryExpenses
	query := r.db.WithContext(ctx).
		Table(q.Table+" AS e").
		Select("c.id AS category_id, c.name, c.account_code, c.is_salary, COALESCE(SUM(e."+q.AmountColumn+"), 0) AS amount").
		Joins("JOIN expense_categories c ON c.id = e.category_id").
		Where("e."+q.StatusColumn+" NOT IN ?", q.Excluded)
	if w.Period != nil {
		query = query.Where("e.accounting_period = ?", w.Period.String())
	} else {
		query = query.Where("e."+q.DateColumn+" BETWEEN ? AND ?", w.Start, w.End)
	}

	var rows []report.CategoryAmount
	err := query.
		Group("c.id, c.name, c.account_code, c.is_salary").
		Order("c.account_code").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// openItemRow is the scan target for the open item queries.
type openItemRow struct {
	ID            uuid.UUID
	PartyID       uuid.UUID
	PartyName     string
	Date          time.Time
	TotalAmount   decimal.Decimal
	SettledAmount decimal.Decimal
}

// OpenPurchases returns non-voided purchases with their active payment
// sums. Payments after the cutoff do not count as settled, so snapshots
// at past dates reconstruct the balance as it stood then.
func (r *GormLedgerReader) OpenPurchases(ctx context.Context, f report.OpenItemFilter) ([]report.OpenItem, error) {
	query := r.db.WithContext(ctx).
		Table("purchases AS p").
		Joins("LEFT JOIN payments pay ON pay.purchase_id = p.id").
		Where("p.record_status NOT IN ?", report.QueryPurchases.Excluded)
	if f.Cutoff.IsZero() {
		query = query.Select(
			"p.id, p.supplier_id AS party_id, p.supplier_name AS party_name, p.purchase_date AS date, p.total_amount, "+
				"COALESCE(SUM(CASE WHEN pay.status = ? THEN pay.amount ELSE 0 END), 0) AS settled_amount",
			"ACTIVE")
	} else {
		query = query.Select(
			"p.id, p.supplier_id AS party_id, p.supplier_name AS party_name, p.purchase_date AS date, p.total_amount, "+
				"COALESCE(SUM(CASE WHEN pay.status = ? AND pay.pay_date <= ? THEN pay.amount ELSE 0 END), 0) AS settled_amount",
			"ACTIVE", f.Cutoff)
		query = query.Where("p.purchase_date <= ?", f.Cutoff)
	}
	if f.PartyID != uuid.Nil {
		query = query.Where("p.supplier_id = ?", f.PartyID)
	}

	var rows []openItemRow
	err := query.
		Group("p.id, p.supplier_id, p.supplier_name, p.purchase_date, p.total_amount").
		Order("p.purchase_date, p.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toOpenItems(rows, f.OnlyOpen), nil
}

// OpenOrders returns non-cancelled orders with their active receipt
// sums.
func (r *GormLedgerReader) OpenOrders(ctx context.Context, f report.OpenItemFilter) ([]report.OpenItem, error) {
	query := r.db.WithContext(ctx).
		Table("orders AS o").
		Joins("LEFT JOIN receipts rc ON rc.order_id = o.id").
		Where("o.order_status NOT IN ?", report.QueryOrders.Excluded)
	if f.Cutoff.IsZero() {
		query = query.Select(
			"o.id, o.customer_id AS party_id, o.customer_name AS party_name, o.delivery_date AS date, o.total_amount, "+
				"COALESCE(SUM(CASE WHEN rc.status = ? THEN rc.amount ELSE 0 END), 0) AS settled_amount",
			"ACTIVE")
	} else {
		query = query.Select(
			"o.id, o.customer_id AS party_id, o.customer_name AS party_name, o.delivery_date AS date, o.total_amount, "+
				"COALESCE(SUM(CASE WHEN rc.status = ? AND rc.received_date <= ? THEN rc.amount ELSE 0 END), 0) AS settled_amount",
			"ACTIVE", f.Cutoff)
		query = query.Where("o.delivery_date <= ?", f.Cutoff)
	}
	if f.PartyID != uuid.Nil {
		query = query.Where("o.customer_id = ?", f.PartyID)
	}

	var rows []openItemRow
	err := query.
		Group("o.id, o.customer_id, o.customer_name, o.delivery_date, o.total_amount").
		Order("o.delivery_date, o.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toOpenItems(rows, f.OnlyOpen), nil
}

// scoped starts a query on the descriptor's table with its status
// predicate applied.
func (r *GormLedgerReader) scoped(ctx context.Context, q report.Query) *gorm.DB {
	query := r.db.WithContext(ctx).Table(q.Table)
	if q.StatusColumn != "" && len(q.Excluded) > 0 {
		query = query.Where(q.StatusColumn+" NOT IN ?", q.Excluded)
	}
	return query
}

// toOpenItems converts scan rows, optionally dropping settled records.
// The open filter compares unclamped amounts; clamping stays with the
// calculators.
func toOpenItems(rows []openItemRow, onlyOpen bool) []report.OpenItem {
	items := make([]report.OpenItem, 0, len(rows))
	for _, row := range rows {
		if onlyOpen && row.TotalAmount.LessThanOrEqual(row.SettledAmount) {
			continue
		}
		items = append(items, report.OpenItem{
			ID:            row.ID,
			PartyID:       row.PartyID,
			PartyName:     row.PartyName,
			Date:          row.Date,
			TotalAmount:   row.TotalAmount,
			SettledAmount: row.SettledAmount,
		})
	}
	return items
}
