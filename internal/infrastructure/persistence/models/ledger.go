package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shoplite/backend/internal/domain/ledger"
)

// PurchaseModel is the persistence model for the purchase ledger.
// AccountingPeriod is fixed at creation and indexed because it is the
// grouping key for every flow report.
type PurchaseModel struct {
	BaseModel
	SupplierID       uuid.UUID               `gorm:"type:uuid;not null;index"`
	SupplierName     string                  `gorm:"type:varchar(200);not null"`
	TotalAmount      decimal.Decimal         `gorm:"type:decimal(18,2);not null"`
	PaidAmount       decimal.Decimal         `gorm:"type:decimal(18,2);not null"`
	Balance          decimal.Decimal         `gorm:"type:decimal(18,2);not null;index"`
	PurchaseDate     time.Time               `gorm:"not null;index"`
	AccountingPeriod string                  `gorm:"type:varchar(7);not null;index"`
	RecordStatus     ledger.RecordStatus     `gorm:"type:varchar(10);not null;default:'ACTIVE';index"`
	Status           ledger.SettlementStatus `gorm:"type:varchar(10);not null;default:'PENDING';index"`
}

// TableName returns the table name for GORM
func (PurchaseModel) TableName() string {
	return "purchases"
}

// ToDomain converts the persistence model to a domain Purchase entity.
func (m *PurchaseModel) ToDomain() *ledger.Purchase {
	return &ledger.Purchase{
		BaseEntity:       m.BaseModel.ToDomain(),
		SupplierID:       m.SupplierID,
		SupplierName:     m.SupplierName,
		TotalAmount:      m.TotalAmount,
		PaidAmount:       m.PaidAmount,
		Balance:          m.Balance,
		PurchaseDate:     m.PurchaseDate,
		AccountingPeriod: ledger.Period(m.AccountingPeriod),
		RecordStatus:     m.RecordStatus,
		Status:           m.Status,
	}
}

// FromDomain populates the persistence model from a domain Purchase entity.
func (m *PurchaseModel) FromDomain(p *ledger.Purchase) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.SupplierID = p.SupplierID
	m.SupplierName = p.SupplierName
	m.TotalAmount = p.TotalAmount
	m.PaidAmount = p.PaidAmount
	m.Balance = p.Balance
	m.PurchaseDate = p.PurchaseDate
	m.AccountingPeriod = p.AccountingPeriod.String()
	m.RecordStatus = p.RecordStatus
	m.Status = p.Status
}

// PaymentModel is the persistence model for payments against purchases.
type PaymentModel struct {
	BaseModel
	PurchaseID       uuid.UUID           `gorm:"type:uuid;not null;index"`
	Amount           decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	PayDate          time.Time           `gorm:"not null;index"`
	AccountingPeriod string              `gorm:"type:varchar(7);not null;index"`
	Status           ledger.RecordStatus `gorm:"type:varchar(10);not null;default:'ACTIVE';index"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *ledger.Payment {
	return &ledger.Payment{
		BaseEntity:       m.BaseModel.ToDomain(),
		PurchaseID:       m.PurchaseID,
		Amount:           m.Amount,
		PayDate:          m.PayDate,
		AccountingPeriod: ledger.Period(m.AccountingPeriod),
		Status:           m.Status,
	}
}

// FromDomain populates the persistence model from a domain Payment entity.
func (m *PaymentModel) FromDomain(p *ledger.Payment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.PurchaseID = p.PurchaseID
	m.Amount = p.Amount
	m.PayDate = p.PayDate
	m.AccountingPeriod = p.AccountingPeriod.String()
	m.Status = p.Status
}

// OrderModel is the persistence model for the customer order ledger.
type OrderModel struct {
	BaseModel
	CustomerID       uuid.UUID            `gorm:"type:uuid;not null;index"`
	CustomerName     string               `gorm:"type:varchar(200);not null"`
	TotalAmount      decimal.Decimal      `gorm:"type:decimal(18,2);not null"`
	OrderDate        time.Time            `gorm:"not null"`
	DeliveryDate     time.Time            `gorm:"not null;index"`
	AccountingPeriod string               `gorm:"type:varchar(7);not null;index"`
	OrderStatus      ledger.OrderStatus   `gorm:"type:varchar(10);not null;default:'PENDING';index"`
	PaymentStatus    ledger.PaymentStatus `gorm:"type:varchar(10);not null;default:'UNPAID';index"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *ledger.Order {
	return &ledger.Order{
		BaseEntity:       m.BaseModel.ToDomain(),
		CustomerID:       m.CustomerID,
		CustomerName:     m.CustomerName,
		TotalAmount:      m.TotalAmount,
		OrderDate:        m.OrderDate,
		DeliveryDate:     m.DeliveryDate,
		AccountingPeriod: ledger.Period(m.AccountingPeriod),
		OrderStatus:      m.OrderStatus,
		PaymentStatus:    m.PaymentStatus,
	}
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *ledger.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.CustomerID = o.CustomerID
	m.CustomerName = o.CustomerName
	m.TotalAmount = o.TotalAmount
	m.OrderDate = o.OrderDate
	m.DeliveryDate = o.DeliveryDate
	m.AccountingPeriod = o.AccountingPeriod.String()
	m.OrderStatus = o.OrderStatus
	m.PaymentStatus = o.PaymentStatus
}

// ReceiptModel is the persistence model for receipts against orders.
type ReceiptModel struct {
	BaseModel
	OrderID          uuid.UUID           `gorm:"type:uuid;not null;index"`
	Amount           decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	ReceivedDate     time.Time           `gorm:"not null;index"`
	AccountingPeriod string              `gorm:"type:varchar(7);not null;index"`
	Status           ledger.RecordStatus `gorm:"type:varchar(10);not null;default:'ACTIVE';index"`
}

// TableName returns the table name for GORM
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ToDomain converts the persistence model to a domain Receipt entity.
func (m *ReceiptModel) ToDomain() *ledger.Receipt {
	return &ledger.Receipt{
		BaseEntity:       m.BaseModel.ToDomain(),
		OrderID:          m.OrderID,
		Amount:           m.Amount,
		ReceivedDate:     m.ReceivedDate,
		AccountingPeriod: ledger.Period(m.AccountingPeriod),
		Status:           m.Status,
	}
}

// FromDomain populates the persistence model from a domain Receipt entity.
func (m *ReceiptModel) FromDomain(r *ledger.Receipt) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.OrderID = r.OrderID
	m.Amount = r.Amount
	m.ReceivedDate = r.ReceivedDate
	m.AccountingPeriod = r.AccountingPeriod.String()
	m.Status = r.Status
}

// ExpenseCategoryModel is the persistence model for expense categories.
type ExpenseCategoryModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	AccountCode string `gorm:"type:varchar(20);not null"`
	IsSalary    bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (ExpenseCategoryModel) TableName() string {
	return "expense_categories"
}

// ToDomain converts the persistence model to a domain ExpenseCategory entity.
func (m *ExpenseCategoryModel) ToDomain() *ledger.ExpenseCategory {
	return &ledger.ExpenseCategory{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		AccountCode: m.AccountCode,
		IsSalary:    m.IsSalary,
	}
}

// FromDomain populates the persistence model from a domain ExpenseCategory entity.
func (m *ExpenseCategoryModel) FromDomain(c *ledger.ExpenseCategory) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.AccountCode = c.AccountCode
	m.IsSalary = c.IsSalary
}

// ExpenseModel is the persistence model for the expense ledger.
type ExpenseModel struct {
	BaseModel
	CategoryID       uuid.UUID           `gorm:"type:uuid;not null;index"`
	EmployeeID       *uuid.UUID          `gorm:"type:uuid;index"`
	Amount           decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	ExpenseDate      time.Time           `gorm:"not null;index"`
	AccountingPeriod string              `gorm:"type:varchar(7);not null;index"`
	Status           ledger.RecordStatus `gorm:"type:varchar(10);not null;default:'ACTIVE';index"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense entity.
func (m *ExpenseModel) ToDomain() *ledger.Expense {
	return &ledger.Expense{
		BaseEntity:       m.BaseModel.ToDomain(),
		CategoryID:       m.CategoryID,
		EmployeeID:       m.EmployeeID,
		Amount:           m.Amount,
		ExpenseDate:      m.ExpenseDate,
		AccountingPeriod: ledger.Period(m.AccountingPeriod),
		Status:           m.Status,
	}
}

// FromDomain populates the persistence model from a domain Expense entity.
func (m *ExpenseModel) FromDomain(e *ledger.Expense) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.CategoryID = e.CategoryID
	m.EmployeeID = e.EmployeeID
	m.Amount = e.Amount
	m.ExpenseDate = e.ExpenseDate
	m.AccountingPeriod = e.AccountingPeriod.String()
	m.Status = e.Status
}

// SaleModel is the persistence model for the retail sales ledger.
type SaleModel struct {
	BaseModel
	ProductID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	Amount           decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	PayMethod        ledger.PayMethod `gorm:"type:varchar(10);not null;index"`
	SaleDate         time.Time        `gorm:"not null;index"`
	AccountingPeriod string           `gorm:"type:varchar(7);not null;index"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// ToDomain converts the persistence model to a domain Sale entity.
func (m *SaleModel) ToDomain() *ledger.Sale {
	return &ledger.Sale{
		BaseEntity:       m.BaseModel.ToDomain(),
		ProductID:        m.ProductID,
		Amount:           m.Amount,
		PayMethod:        m.PayMethod,
		SaleDate:         m.SaleDate,
		AccountingPeriod: ledger.Period(m.AccountingPeriod),
	}
}

// FromDomain populates the persistence model from a domain Sale entity.
func (m *SaleModel) FromDomain(s *ledger.Sale) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.ProductID = s.ProductID
	m.Amount = s.Amount
	m.PayMethod = s.PayMethod
	m.SaleDate = s.SaleDate
	m.AccountingPeriod = s.AccountingPeriod.String()
}

// AllModels lists every ledger model for auto-migration in tests.
func AllModels() []any {
	return []any{
		&PurchaseModel{},
		&PaymentModel{},
		&OrderModel{},
		&ReceiptModel{},
		&ExpenseCategoryModel{},
		&ExpenseModel{},
		&SaleModel{},
	}
}
