package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoplite/backend/internal/domain/ledger"
	"github.com/shoplite/backend/internal/infrastructure/persistence/models"
)

// GormExpenseRepository implements ledger.ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// List returns expenses matching the filter with the total match count
func (r *GormExpenseRepository) List(ctx context.Context, filter ledger.ExpenseFilter) ([]ledger.Expense, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ExpenseModel{})
	if filter.Period != "" {
		query = query.Where("accounting_period = ?", filter.Period.String())
	}
	if filter.CategoryID != uuid.Nil {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.ExpenseModel
	if err := query.
		Order("expense_date DESC, id").
		Scopes(paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	expenses := make([]ledger.Expense, len(rows))
	for i := range rows {
		expenses[i] = *rows[i].ToDomain()
	}
	return expenses, total, nil
}

// ListCategories returns all expense categories ordered by account code
func (r *GormExpenseRepository) ListCategories(ctx context.Context) ([]ledger.ExpenseCategory, error) {
	var rows []models.ExpenseCategoryModel
	if err := r.db.WithContext(ctx).
		Order("account_code").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	categories := make([]ledger.ExpenseCategory, len(rows))
	for i := range rows {
		categories[i] = *rows[i].ToDomain()
	}
	return categories, nil
}
