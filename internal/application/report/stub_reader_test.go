package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shoplite/backend/internal/domain/report"
)

// stubReader serves canned aggregates keyed by ledger table and window
// label, standing in for the gorm-backed accessor.
type stubReader struct {
	sums      map[string]decimal.Decimal         // table + "|" + window label
	through   map[string]decimal.Decimal         // table + "@" + cutoff day
	expenses  map[string][]report.CategoryAmount // window label
	purchases []report.OpenItem
	orders    []report.OpenItem
	err       error
}

func (s *stubReader) Sum(_ context.Context, q report.Query, w report.Window) (decimal.Decimal, error) {
	if s.err != nil {
		return decimal.Zero, s.err
	}
	return s.sums[q.Table+"|"+w.Label()], nil
}

func (s *stubReader) SumThrough(_ context.Context, q report.Query, cutoff time.Time) (decimal.Decimal, error) {
	if s.err != nil {
		return decimal.Zero, s.err
	}
	return s.through[q.Table+"@"+cutoff.Format("2006-01-02")], nil
}

func (s *stubReader) ExpenseByCategory(_ context.Context, w report.Window) ([]report.CategoryAmount, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.expenses[w.Label()], nil
}

func (s *stubReader) OpenPurchases(_ context.Context, f report.OpenItemFilter) ([]report.OpenItem, error) {
	return s.openItems(s.purchases, f)
}

func (s *stubReader) OpenOrders(_ context.Context, f report.OpenItemFilter) ([]report.OpenItem, error) {
	return s.openItems(s.orders, f)
}

func (s *stubReader) openItems(items []report.OpenItem, f report.OpenItemFilter) ([]report.OpenItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]report.OpenItem, 0, len(items))
	for _, item := range items {
		if f.PartyID != uuid.Nil && item.PartyID != f.PartyID {
			continue
		}
		if !f.Cutoff.IsZero() && item.Date.After(f.Cutoff) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}
