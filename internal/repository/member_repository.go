package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fitcore/fitcore-api/internal/models"

	"gorm.io/gorm"
)

// ErrMemberNumberTaken is returned when a member number is already in use
var ErrMemberNumberTaken = errors.New("member number already in use")

// MemberRepository defines the interface for member data access
type MemberRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Member, error)
	FindByNumber(ctx context.Context, number int64) (*models.Member, error)
	Create(ctx context.Context, member *models.Member) error
	Update(ctx context.Context, member *models.Member) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Member, int64, error)
	NextMemberNumber(ctx context.Context) (int64, error)
	FindLapsed(ctx context.Context, asOf time.Time) ([]models.Member, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) FindByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).First(&member, id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByNumber(ctx context.Context, number int64) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).
		Where("member_number = ?", number).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrMemberNumberTaken
		}
		return err
	}
	return nil
}

func (r *memberRepository) Update(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *memberRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *memberRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Member{}, id).Error
}

func (r *memberRepository) List(ctx context.Context, query *ListQuery) ([]models.Member, int64, error) {
	var members []models.Member
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Member{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("name ILIKE ? OR phone ILIKE ? OR CAST(member_number AS TEXT) ILIKE ?",
			search, search, search)
	}

	if query.Filters["status"] != "" {
		db = db.Where("status = ?", query.Filters["status"])
	}

	db.Count(&total)

	if query.SortBy != "" {
		order := query.SortBy
		if query.SortDir == "desc" {
			order += " DESC"
		}
		db = db.Order(order)
	} else {
		db = db.Order("created_at DESC")
	}

	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Find(&members).Error
	return members, total, err
}

// NextMemberNumber returns one past the highest assigned member number.
// Member numbers are operator-facing identifiers, not ledger state; a
// collision here is caught by the unique index and surfaced to the form.
func (r *memberRepository) NextMemberNumber(ctx context.Context) (int64, error) {
	var result struct {
		Max int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Select("COALESCE(MAX(member_number), 0) as max").
		Scan(&result).Error
	if err != nil {
		return 0, err
	}
	return result.Max + 1, nil
}

// FindLapsed returns active or frozen members whose subscription window
// ended before asOf. Used by the daily expiry job.
func (r *memberRepository) FindLapsed(ctx context.Context, asOf time.Time) ([]models.Member, error) {
	var members []models.Member
	err := r.db.WithContext(ctx).
		Where("status IN ? AND subscription_end < ?",
			[]string{models.MemberStatusActive, models.MemberStatusFrozen}, asOf).
		Find(&members).Error
	return members, err
}
