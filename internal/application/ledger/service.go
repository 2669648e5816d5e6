package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/shoplite/backend/internal/domain/ledger"
	"github.com/shoplite/backend/internal/domain/shared"
)

// QueryService provides read access to the raw ledgers behind the
// reports. Listings return rows of every status so voided records stay
// auditable; only the aggregation layer filters them out.
type QueryService struct {
	purchases ledger.PurchaseRepository
	orders    ledger.OrderRepository
	expenses  ledger.ExpenseRepository
	sales     ledger.SaleRepository
}

// NewQueryService creates a new QueryService
func NewQueryService(
	purchases ledger.PurchaseRepository,
	orders ledger.OrderRepository,
	expenses ledger.ExpenseRepository,
	sales ledger.SaleRepository,
) *QueryService {
	return &QueryService{
		purchases: purchases,
		orders:    orders,
		expenses:  expenses,
		sales:     sales,
	}
}

// PurchaseListRequest filters the purchase ledger listing.
type PurchaseListRequest struct {
	Period       string `form:"period"`
	SupplierID   string `form:"supplierId"`
	RecordStatus string `form:"recordStatus"`
	Status       string `form:"status"`
	Page         int    `form:"page"`
	PageSize     int    `form:"pageSize"`
}

// OrderListRequest filters the order ledger listing.
type OrderListRequest struct {
	Period        string `form:"period"`
	CustomerID    string `form:"customerId"`
	OrderStatus   string `form:"orderStatus"`
	PaymentStatus string `form:"paymentStatus"`
	Page          int    `form:"page"`
	PageSize      int    `form:"pageSize"`
}

// ExpenseListRequest filters the expense ledger listing.
type ExpenseListRequest struct {
	Period     string `form:"period"`
	CategoryID string `form:"categoryId"`
	Status     string `form:"status"`
	Page       int    `form:"page"`
	PageSize   int    `form:"pageSize"`
}

// SaleListRequest filters the retail sales ledger listing.
type SaleListRequest struct {
	Period    string `form:"period"`
	ProductID string `form:"productId"`
	PayMethod string `form:"payMethod"`
	Page      int    `form:"page"`
	PageSize  int    `form:"pageSize"`
}

// ListPurchases lists purchases matching the request filters.
func (s *QueryService) ListPurchases(ctx context.Context, req PurchaseListRequest) ([]ledger.Purchase, int64, error) {
	base, err := parseListFilter(req.Period, req.Page, req.PageSize)
	if err != nil {
		return nil, 0, err
	}
	filter := ledger.PurchaseFilter{ListFilter: base}
	if filter.SupplierID, err = parseOptionalID(req.SupplierID, "supplierId"); err != nil {
		return nil, 0, err
	}
	if req.RecordStatus != "" {
		rs := ledger.RecordStatus(req.RecordStatus)
		if !rs.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "unknown record status: "+req.RecordStatus)
		}
		filter.RecordStatus = rs
	}
	if req.Status != "" {
		st := ledger.SettlementStatus(req.Status)
		if !st.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "unknown settlement status: "+req.Status)
		}
		filter.Status = st
	}
	return s.purchases.List(ctx, filter)
}

// GetPurchase returns one purchase by ID.
func (s *QueryService) GetPurchase(ctx context.Context, id string) (*ledger.Purchase, error) {
	purchaseID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "id must be a UUID")
	}
	return s.purchases.FindByID(ctx, purchaseID)
}

// ListPayments returns every payment booked against a purchase,
// voided ones included.
func (s *QueryService) ListPayments(ctx context.Context, purchaseID string) ([]ledger.Payment, error) {
	id, err := uuid.Parse(purchaseID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "id must be a UUID")
	}
	if _, err := s.purchases.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.purchases.ListPayments(ctx, id)
}

// ListOrders lists orders matching the request filters.
func (s *QueryService) ListOrders(ctx context.Context, req OrderListRequest) ([]ledger.Order, int64, error) {
	base, err := parseListFilter(req.Period, req.Page, req.PageSize)
	if err != nil {
		return nil, 0, err
	}
	filter := ledger.OrderFilter{ListFilter: base}
	if filter.CustomerID, err = parseOptionalID(req.CustomerID, "customerId"); err != nil {
		return nil, 0, err
	}
	if req.OrderStatus != "" {
		os := ledger.OrderStatus(req.OrderStatus)
		if !os.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "unknown order status: "+req.OrderStatus)
		}
		filter.OrderStatus = os
	}
	if req.PaymentStatus != "" {
		ps := ledger.PaymentStatus(req.PaymentStatus)
		if !ps.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "unknown payment status: "+req.PaymentStatus)
		}
		filter.PaymentStatus = ps
	}
	return s.orders.List(ctx, filter)
}

// GetOrder returns one order by ID.
func (s *QueryService) GetOrder(ctx context.Context, id string) (*ledger.Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "id must be a UUID")
	}
	return s.orders.FindByID(ctx, orderID)
}

// ListReceipts returns every receipt booked against an order.
func (s *QueryService) ListReceipts(ctx context.Context, orderID string) ([]ledger.Receipt, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "id must be a UUID")
	}
	if _, err := s.orders.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.orders.ListReceipts(ctx, id)
}

// ListExpenses lists expenses matching the request filters.
func (s *QueryService) ListExpenses(ctx context.Context, req ExpenseListRequest) ([]ledger.Expense, int64, error) {
	base, err := parseListFilter(req.Period, req.Page, req.PageSize)
	if err != nil {
		return nil, 0, err
	}
	filter := ledger.ExpenseFilter{ListFilter: base}
	if filter.CategoryID, err = parseOptionalID(req.CategoryID, "categoryId"); err != nil {
		return nil, 0, err
	}
	if req.Status != "" {
		st := ledger.RecordStatus(req.Status)
		if !st.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "unknown record status: "+req.Status)
		}
		filter.Status = st
	}
	return s.expenses.List(ctx, filter)
}

// ListExpenseCategories returns the expense category catalog.
func (s *QueryService) ListExpenseCategories(ctx context.Context) ([]ledger.ExpenseCategory, error) {
	return s.expenses.ListCategories(ctx)
}

// ListSales lists retail sales matching the request filters.
func (s *QueryService) ListSales(ctx context.Context, req SaleListRequest) ([]ledger.Sale, int64, error) {
	base, err := parseListFilter(req.Period, req.Page, req.PageSize)
	if err != nil {
		return nil, 0, err
	}
	filter := ledger.SaleFilter{ListFilter: base}
	if filter.ProductID, err = parseOptionalID(req.ProductID, "productId"); err != nil {
		return nil, 0, err
	}
	if req.PayMethod != "" {
		pm := ledger.PayMethod(req.PayMethod)
		if !pm.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "unknown pay method: "+req.PayMethod)
		}
		filter.PayMethod = pm
	}
	return s.sales.List(ctx, filter)
}

func parseListFilter(period string, page, pageSize int) (ledger.ListFilter, error) {
	filter := ledger.ListFilter{Page: page, PageSize: pageSize}
	if period != "" {
		p, err := ledger.ParsePeriod(period)
		if err != nil {
			return filter, shared.NewDomainError("INVALID_PERIOD", err.Error())
		}
		filter.Period = p
	}
	return filter, nil
}

func parseOptionalID(raw, field string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, shared.NewDomainError("INVALID_INPUT", field+" must be a UUID")
	}
	return id, nil
}
