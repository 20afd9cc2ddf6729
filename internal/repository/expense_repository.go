package repository

import (
	"context"
	"time"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"gorm.io/gorm"
)

// ExpenseRepository defines the interface for expense data access
type ExpenseRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Expense, error)
	Create(ctx context.Context, expense *models.Expense) error
	Update(ctx context.Context, expense *models.Expense) error
	List(ctx context.Context, query *ListQuery) ([]models.Expense, int64, error)
	FindBetween(ctx context.Context, start, end time.Time) ([]models.Expense, error)
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) FindByID(ctx context.Context, id uint) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.WithContext(ctx).First(&expense, id).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) List(ctx context.Context, query *ListQuery) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Expense{})

	if category := query.Filters["category"]; category != "" {
		db = db.Where("category = ?", category)
	}
	if query.Search != "" {
		db = db.Where("description ILIKE ?", "%"+query.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("expense_date DESC").
		Offset(query.Offset()).
		Limit(query.PerPage).
		Find(&expenses).Error

	return expenses, total, err
}

func (r *expenseRepository) FindBetween(ctx context.Context, start, end time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.WithContext(ctx).
		Where("expense_date >= ? AND expense_date <= ?", start, end).
		Find(&expenses).Error
	return expenses, err
}
