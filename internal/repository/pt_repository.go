package repository

import (
	"context"

	"github.com/fitcore/fitcore-api/internal/models"

	"gorm.io/gorm"
)

// PTPackageRepository defines the interface for PT package data access
type PTPackageRepository interface {
	FindByID(ctx context.Context, id uint) (*models.PTPackage, error)
	Create(ctx context.Context, pkg *models.PTPackage) error
	Update(ctx context.Context, pkg *models.PTPackage) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.PTPackage, int64, error)
	DecrementSession(ctx context.Context, id uint) (bool, error)
}

type ptPackageRepository struct {
	db *gorm.DB
}

// NewPTPackageRepository creates a new PT package repository
func NewPTPackageRepository(db *gorm.DB) PTPackageRepository {
	return &ptPackageRepository{db: db}
}

func (r *ptPackageRepository) FindByID(ctx context.Context, id uint) (*models.PTPackage, error) {
	var pkg models.PTPackage
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Coach").
		First(&pkg, id).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *ptPackageRepository) Create(ctx context.Context, pkg *models.PTPackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *ptPackageRepository) Update(ctx context.Context, pkg *models.PTPackage) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

func (r *ptPackageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.PTPackage{}, id).Error
}

func (r *ptPackageRepository) List(ctx context.Context, query *ListQuery) ([]models.PTPackage, int64, error) {
	var pkgs []models.PTPackage
	var total int64

	db := r.db.WithContext(ctx).Model(&models.PTPackage{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("client_name ILIKE ?", search)
	}

	if query.Filters["coach_id"] != "" {
		db = db.Where("coach_id = ?", query.Filters["coach_id"])
	}
	if query.Filters["active"] == "true" {
		db = db.Where("remaining_sessions > 0")
	}

	db.Count(&total)

	db = db.Preload("Coach").Order("created_at DESC")
	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Find(&pkgs).Error
	return pkgs, total, err
}

// DecrementSession consumes one session. The guard in the WHERE clause
// makes concurrent decrements safe; returns false when no session was
// left to consume.
func (r *ptPackageRepository) DecrementSession(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.PTPackage{}).
		Where("id = ? AND remaining_sessions > 0", id).
		Update("remaining_sessions", gorm.Expr("remaining_sessions - 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
