package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shoplite/backend/internal/domain/shared"
)

// ExpenseCategory classifies operating expenses for the income statement.
// Salary categories additionally feed payroll expense tracking.
type ExpenseCategory struct {
	shared.BaseEntity
	Name        string
	AccountCode string
	IsSalary    bool
}

// Expense is an operating expense on the expense ledger. EmployeeID is
// set only for payroll expenses.
type Expense struct {
	shared.BaseEntity
	CategoryID       uuid.UUID
	EmployeeID       *uuid.UUID
	Amount           decimal.Decimal
	ExpenseDate      time.Time
	AccountingPeriod Period
	Status           RecordStatus
}

// NewExpense creates an active expense record.
func NewExpense(categoryID uuid.UUID, employeeID *uuid.UUID, amount decimal.Decimal, expenseDate time.Time) *Expense {
	return &Expense{
		BaseEntity:       shared.NewBaseEntity(),
		CategoryID:       categoryID,
		EmployeeID:       employeeID,
		Amount:           RoundMoney(amount),
		ExpenseDate:      expenseDate,
		AccountingPeriod: PeriodOf(expenseDate),
		Status:           RecordStatusActive,
	}
}

// IsVoided returns true if the expense has been voided
func (e *Expense) IsVoided() bool {
	return e.Status == RecordStatusVoided
}
