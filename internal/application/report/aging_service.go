package report

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shoplite/backend/internal/domain/report"
	"github.com/shoplite/backend/internal/domain/shared"
)

// AgingService builds payables and receivables aging reports. Both sides
// run the same engine over different ledgers: open purchases against
// suppliers, open orders against customers.
type AgingService struct {
	reader        report.LedgerReader
	logger        *zap.Logger
	summaryScheme BucketScheme
	detailScheme  BucketScheme
	now           func() time.Time
}

// NewAgingService creates a new AgingService.
func NewAgingService(reader report.LedgerReader, logger *zap.Logger, summary, detail BucketScheme) *AgingService {
	return &AgingService{
		reader:        reader,
		logger:        logger,
		summaryScheme: summary,
		detailScheme:  detail,
		now:           time.Now,
	}
}

// AgingRequest filters an aging summary. SupplierID scopes the payables
// side, CustomerID the receivables side; AsOfDate defaults to today.
// Bucket narrows the summary to one bucket column; OnlyUnpaid defaults
// to true and, when off, keeps settled parties in the listing.
type AgingRequest struct {
	AsOfDate   string `form:"asOfDate"`
	SupplierID string `form:"supplierId"`
	CustomerID string `form:"customerId"`
	Bucket     string `form:"agingBucket"`
	OnlyUnpaid *bool  `form:"onlyUnpaid"`
	Page       int    `form:"page"`
	PageSize   int    `form:"size"`
}

// AgingDetailRequest filters a per-record aging listing. Bucket narrows
// to one aging bucket; OnlyUnpaid drops settled records and defaults to
// true.
type AgingDetailRequest struct {
	AsOfDate   string `form:"asOfDate"`
	SupplierID string `form:"supplierId"`
	CustomerID string `form:"customerId"`
	Bucket     string `form:"agingBucket"`
	OnlyUnpaid *bool  `form:"onlyUnpaid"`
	Page       int    `form:"page"`
	PageSize   int    `form:"size"`
}

// AgingReport is a bucketed summary with one row per party plus a grand
// total row. Pagination applies to the party rows; the total row always
// covers every party and closes each page. Total counts the party rows
// before pagination.
type AgingReport struct {
	AsOf     time.Time                `json:"as_of"`
	Buckets  []string                 `json:"buckets"`
	Rows     []report.AgingSummaryRow `json:"rows"`
	Total    int                      `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// AgingDetailReport lists open records with their bucket classification.
// Total counts the matching records before pagination.
type AgingDetailReport struct {
	AsOf     time.Time               `json:"as_of"`
	Buckets  []string                `json:"buckets"`
	Rows     []report.AgingDetailRow `json:"rows"`
	Total    int                     `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// PayablesAging summarizes open supplier balances by aging bucket. A
// storage failure propagates; an operator reconciling accounts must see
// the failure, not a fabricated empty list.
func (s *AgingService) PayablesAging(ctx context.Context, req AgingRequest) (*AgingReport, error) {
	return s.summary(ctx, req, req.SupplierID, "supplierId", s.reader.OpenPurchases)
}

// ReceivablesAging summarizes open customer balances by aging bucket.
func (s *AgingService) ReceivablesAging(ctx context.Context, req AgingRequest) (*AgingReport, error) {
	return s.summary(ctx, req, req.CustomerID, "customerId", s.reader.OpenOrders)
}

// PayablesAgingDetail lists open purchases with bucket classification.
func (s *AgingService) PayablesAgingDetail(ctx context.Context, req AgingDetailRequest) (*AgingDetailReport, error) {
	return s.detail(ctx, req, req.SupplierID, "supplierId", s.reader.OpenPurchases)
}

// ReceivablesAgingDetail lists open orders with bucket classification.
func (s *AgingService) ReceivablesAgingDetail(ctx context.Context, req AgingDetailRequest) (*AgingDetailReport, error) {
	return s.detail(ctx, req, req.CustomerID, "customerId", s.reader.OpenOrders)
}

type openItemsFunc func(ctx context.Context, f report.OpenItemFilter) ([]report.OpenItem, error)

func (s *AgingService) summary(ctx context.Context, req AgingRequest, party, partyParam string, fetch openItemsFunc) (*AgingReport, error) {
	asOf, partyID, err := s.resolveScope(req.AsOfDate, party, partyParam)
	if err != nil {
		return nil, err
	}
	if req.Bucket != "" && !s.summaryScheme.HasBucket(req.Bucket) {
		return nil, shared.NewDomainError("INVALID_INPUT", "unknown aging bucket: "+req.Bucket)
	}
	onlyUnpaid := req.OnlyUnpaid == nil || *req.OnlyUnpaid
	page, pageSize := normalizePage(req.Page, req.PageSize)

	items, err := fetch(ctx, report.OpenItemFilter{Cutoff: asOf, PartyID: partyID, OnlyOpen: onlyUnpaid})
	if err != nil {
		return nil, err
	}

	byParty := make(map[uuid.UUID]*report.AgingSummaryRow)
	order := make([]uuid.UUID, 0)
	for _, item := range items {
		balance := openBalance(item, s.logger)
		if onlyUnpaid && !balance.IsPositive() {
			continue
		}
		bucket := s.summaryScheme.Classify(DaysOutstanding(item.Date, asOf))
		if req.Bucket != "" && bucket != req.Bucket {
			continue
		}
		row, ok := byParty[item.PartyID]
		if !ok {
			row = &report.AgingSummaryRow{
				PartyID:   item.PartyID,
				PartyName: item.PartyName,
				Buckets:   emptyBuckets(s.summaryScheme),
			}
			byParty[item.PartyID] = row
			order = append(order, item.PartyID)
		}
		for i := range row.Buckets {
			if row.Buckets[i].Bucket == bucket {
				row.Buckets[i].Amount = row.Buckets[i].Amount.Add(balance)
				break
			}
		}
		row.TotalAmount = row.TotalAmount.Add(item.TotalAmount)
		row.SettledAmount = row.SettledAmount.Add(item.SettledAmount)
		row.Balance = row.Balance.Add(balance)
	}

	rows := make([]report.AgingSummaryRow, 0, len(byParty))
	for _, id := range order {
		rows = append(rows, *byParty[id])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].PartyName != rows[j].PartyName {
			return rows[i].PartyName < rows[j].PartyName
		}
		return rows[i].PartyID.String() < rows[j].PartyID.String()
	})

	// The total row sums every party, then pagination trims the party
	// rows only.
	withTotal := appendAgingTotals(rows, s.summaryScheme)
	totalRow := withTotal[len(withTotal)-1]
	total := len(rows)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	pageRows := make([]report.AgingSummaryRow, 0, end-start+1)
	pageRows = append(pageRows, rows[start:end]...)
	pageRows = append(pageRows, totalRow)

	return &AgingReport{
		AsOf:     asOf,
		Buckets:  s.summaryScheme.Labels(),
		Rows:     pageRows,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *AgingService) detail(ctx context.Context, req AgingDetailRequest, party, partyParam string, fetch openItemsFunc) (*AgingDetailReport, error) {
	asOf, partyID, err := s.resolveScope(req.AsOfDate, party, partyParam)
	if err != nil {
		return nil, err
	}
	if req.Bucket != "" && !s.detailScheme.HasBucket(req.Bucket) {
		return nil, shared.NewDomainError("INVALID_INPUT", "unknown aging bucket: "+req.Bucket)
	}
	onlyUnpaid := req.OnlyUnpaid == nil || *req.OnlyUnpaid

	items, err := fetch(ctx, report.OpenItemFilter{Cutoff: asOf, PartyID: partyID, OnlyOpen: onlyUnpaid})
	if err != nil {
		return nil, err
	}

	rows := make([]report.AgingDetailRow, 0, len(items))
	for _, item := range items {
		balance := openBalance(item, s.logger)
		if onlyUnpaid && !balance.IsPositive() {
			continue
		}
		days := DaysOutstanding(item.Date, asOf)
		bucket := s.detailScheme.Classify(days)
		if req.Bucket != "" && bucket != req.Bucket {
			continue
		}
		rows = append(rows, report.AgingDetailRow{
			ID:              item.ID,
			PartyID:         item.PartyID,
			PartyName:       item.PartyName,
			Date:            item.Date,
			TotalAmount:     item.TotalAmount,
			SettledAmount:   item.SettledAmount,
			Balance:         balance,
			Bucket:          bucket,
			DaysOutstanding: days,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		return rows[i].ID.String() < rows[j].ID.String()
	})

	page, pageSize := normalizePage(req.Page, req.PageSize)
	total := len(rows)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &AgingDetailReport{
		AsOf:     asOf,
		Buckets:  s.detailScheme.Labels(),
		Rows:     rows[start:end],
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *AgingService) resolveScope(asOfDate, partyID, partyParam string) (time.Time, uuid.UUID, error) {
	asOf := s.now()
	if asOfDate != "" {
		parsed, err := time.Parse(dateLayout, asOfDate)
		if err != nil {
			return time.Time{}, uuid.Nil, shared.NewDomainError("INVALID_INPUT", "asOfDate must be YYYY-MM-DD")
		}
		asOf = parsed
	}
	id := uuid.Nil
	if partyID != "" {
		parsed, err := uuid.Parse(partyID)
		if err != nil {
			return time.Time{}, uuid.Nil, shared.NewDomainError("INVALID_INPUT", partyParam+" must be a UUID")
		}
		id = parsed
	}
	return asOf, id, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func emptyBuckets(scheme BucketScheme) []report.BucketTotal {
	labels := scheme.Labels()
	out := make([]report.BucketTotal, len(labels))
	for i, l := range labels {
		out[i] = report.BucketTotal{Bucket: l}
	}
	return out
}
