package repository

import (
	"context"

	"github.com/fitcore/fitcore-api/internal/models"

	"gorm.io/gorm"
)

// DayPassRepository defines the interface for day pass data access
type DayPassRepository interface {
	FindByID(ctx context.Context, id uint) (*models.DayPass, error)
	Create(ctx context.Context, pass *models.DayPass) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.DayPass, int64, error)
}

type dayPassRepository struct {
	db *gorm.DB
}

// NewDayPassRepository creates a new day pass repository
func NewDayPassRepository(db *gorm.DB) DayPassRepository {
	return &dayPassRepository{db: db}
}

func (r *dayPassRepository) FindByID(ctx context.Context, id uint) (*models.DayPass, error) {
	var pass models.DayPass
	err := r.db.WithContext(ctx).First(&pass, id).Error
	if err != nil {
		return nil, err
	}
	return &pass, nil
}

func (r *dayPassRepository) Create(ctx context.Context, pass *models.DayPass) error {
	return r.db.WithContext(ctx).Create(pass).Error
}

func (r *dayPassRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.DayPass{}, id).Error
}

func (r *dayPassRepository) List(ctx context.Context, query *ListQuery) ([]models.DayPass, int64, error) {
	var passes []models.DayPass
	var total int64

	db := r.db.WithContext(ctx).Model(&models.DayPass{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("name ILIKE ? OR phone ILIKE ?", search, search)
	}
	if query.Filters["kind"] != "" {
		db = db.Where("kind = ?", query.Filters["kind"])
	}

	db.Count(&total)

	db = db.Order("created_at DESC")
	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Find(&passes).Error
	return passes, total, err
}
