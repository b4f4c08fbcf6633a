package repository

import (
	"context"
	"time"

	"github.com/fitcore/fitcore-api/internal/models"

	"gorm.io/gorm"
)

// VisitorRepository defines the interface for visitor log data access
type VisitorRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Visitor, error)
	Create(ctx context.Context, visitor *models.Visitor) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Visitor, int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type visitorRepository struct {
	db *gorm.DB
}

// NewVisitorRepository creates a new visitor repository
func NewVisitorRepository(db *gorm.DB) VisitorRepository {
	return &visitorRepository{db: db}
}

func (r *visitorRepository) FindByID(ctx context.Context, id uint) (*models.Visitor, error) {
	var visitor models.Visitor
	err := r.db.WithContext(ctx).First(&visitor, id).Error
	if err != nil {
		return nil, err
	}
	return &visitor, nil
}

func (r *visitorRepository) Create(ctx context.Context, visitor *models.Visitor) error {
	return r.db.WithContext(ctx).Create(visitor).Error
}

func (r *visitorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Visitor{}, id).Error
}

func (r *visitorRepository) List(ctx context.Context, query *ListQuery) ([]models.Visitor, int64, error) {
	var visitors []models.Visitor
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Visitor{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("name ILIKE ? OR phone ILIKE ?", search, search)
	}

	db.Count(&total)

	db = db.Order("created_at DESC")
	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Find(&visitors).Error
	return visitors, total, err
}

// DeleteOlderThan prunes visitor entries created before cutoff
func (r *visitorRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.Visitor{})
	return res.RowsAffected, res.Error
}
