package repository

import (
	"context"

	"github.com/fitcore/fitcore-api/internal/models"

	"gorm.io/gorm"
)

// StaffRepository defines the interface for staff data access
type StaffRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Staff, error)
	Create(ctx context.Context, staff *models.Staff) error
	Update(ctx context.Context, staff *models.Staff) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Staff, int64, error)
	FindAll(ctx context.Context) ([]models.Staff, error)
}

type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) FindByID(ctx context.Context, id uint) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.WithContext(ctx).First(&staff, id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) Create(ctx context.Context, staff *models.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepository) Update(ctx context.Context, staff *models.Staff) error {
	return r.db.WithContext(ctx).Save(staff).Error
}

func (r *staffRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Staff{}, id).Error
}

func (r *staffRepository) List(ctx context.Context, query *ListQuery) ([]models.Staff, int64, error) {
	var staff []models.Staff
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Staff{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("name ILIKE ? OR role ILIKE ? OR phone ILIKE ?", search, search, search)
	}

	db.Count(&total)

	db = db.Order("name ASC")
	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Find(&staff).Error
	return staff, total, err
}

func (r *staffRepository) FindAll(ctx context.Context) ([]models.Staff, error) {
	var staff []models.Staff
	err := r.db.WithContext(ctx).Order("name ASC").Find(&staff).Error
	return staff, err
}
