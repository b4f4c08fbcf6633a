package repository

import (
	"context"
	"time"

	"github.com/fitcore/fitcore-api/internal/models"

	"gorm.io/gorm"
)

// ExpenseRepository defines the interface for expense data access
type ExpenseRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Expense, error)
	Create(ctx context.Context, expense *models.Expense) error
	Update(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Expense, int64, error)
	FindInWindow(ctx context.Context, from, to time.Time) ([]models.Expense, error)
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
	err := r.db.WithContext(ctx).Preload("Staff").First(&expense, id).Error
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

func (r *expenseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Expense{}, id).Error
}

func (r *expenseRepository) List(ctx context.Context, query *ListQuery) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Expense{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("description ILIKE ?", search)
	}
	if query.Filters["type"] != "" {
		db = db.Where("type = ?", query.Filters["type"])
	}
	if query.Filters["staff_id"] != "" {
		db = db.Where("staff_id = ?", query.Filters["staff_id"])
	}
	if query.Filters["is_paid"] != "" {
		db = db.Where("is_paid = ?", query.Filters["is_paid"] == "true")
	}

	db.Count(&total)

	db = db.Preload("Staff").Order("created_at DESC")
	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Find(&expenses).Error
	return expenses, total, err
}

// FindInWindow returns expenses whose created_at falls inside the
// inclusive [from, to] window, with staff preloaded for loan grouping.
func (r *expenseRepository) FindInWindow(ctx context.Context, from, to time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.WithContext(ctx).
		Preload("Staff").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at ASC").
		Find(&expenses).Error
	return expenses, err
}
