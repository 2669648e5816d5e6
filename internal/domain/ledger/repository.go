package ledger

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter carries the common read-side filters for ledger listings.
// Pagination here applies to listing endpoints only; report aggregation
// never paginates the rows being summed.
type ListFilter struct {
	Period   Period
	Page     int
	PageSize int
}

// PurchaseFilter filters the purchase ledger listing.
type PurchaseFilter struct {
	ListFilter
	SupplierID   uuid.UUID
	RecordStatus RecordStatus
	Status       SettlementStatus
}

// OrderFilter filters the order ledger listing.
type OrderFilter struct {
	ListFilter
	CustomerID    uuid.UUID
	OrderStatus   OrderStatus
	PaymentStatus PaymentStatus
}

// ExpenseFilter filters the expense ledger listing.
type ExpenseFilter struct {
	ListFilter
	CategoryID uuid.UUID
	Status     RecordStatus
}

// SaleFilter filters the retail sales ledger listing.
type SaleFilter struct {
	ListFilter
	ProductID uuid.UUID
	PayMethod PayMethod
}

// PurchaseRepository reads the purchase ledger.
type PurchaseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error)
	List(ctx context.Context, filter PurchaseFilter) ([]Purchase, int64, error)
	ListPayments(ctx context.Context, purchaseID uuid.UUID) ([]Payment, error)
}

// OrderRepository reads the order ledger.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context, filter OrderFilter) ([]Order, int64, error)
	ListReceipts(ctx context.Context, orderID uuid.UUID) ([]Receipt, error)
}

// ExpenseRepository reads the expense ledger.
type ExpenseRepository interface {
	List(ctx context.Context, filter ExpenseFilter) ([]Expense, int64, error)
	ListCategories(ctx context.Context) ([]ExpenseCategory, error)
}

// SaleRepository reads the retail sales ledger.
type SaleRepository interface {
	List(ctx context.Context, filter SaleFilter) ([]Sale, int64, error)
}
