package services

import (
	"context"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/repository"
	"github.com/shopspring/decimal"
)

// StaffService handles staff records
type StaffService struct {
	staffRepo repository.StaffRepository
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo repository.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

// StaffInput carries a new or edited staff record
type StaffInput struct {
	Name   string
	Role   string
	Phone  string
	Salary decimal.Decimal
}

// Create adds a staff member
func (s *StaffService) Create(ctx context.Context, in StaffInput) (*models.Staff, error) {
	if in.Name == "" {
		return nil, NewValidationError("name", "is required")
	}
	if in.Salary.IsNegative() {
		return nil, NewValidationError("salary", "must not be negative")
	}

	staff := &models.Staff{
		Name:   in.Name,
		Role:   in.Role,
		Phone:  in.Phone,
		Salary: in.Salary,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// Update edits a staff record
func (s *StaffService) Update(ctx context.Context, id uint, in StaffInput) (*models.Staff, error) {
	staff, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if in.Salary.IsNegative() {
		return nil, NewValidationError("salary", "must not be negative")
	}

	if in.Name != "" {
		staff.Name = in.Name
	}
	if in.Role != "" {
		staff.Role = in.Role
	}
	if in.Phone != "" {
		staff.Phone = in.Phone
	}
	staff.Salary = in.Salary

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// Get returns one staff member by id
func (s *StaffService) Get(ctx context.Context, id uint) (*models.Staff, error) {
	staff, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return staff, nil
}

// List returns a page of staff
func (s *StaffService) List(ctx context.Context, query *repository.ListQuery) ([]models.Staff, int64, error) {
	return s.staffRepo.List(ctx, query)
}

// Delete removes a staff record
func (s *StaffService) Delete(ctx context.Context, id uint) error {
	if _, err := s.staffRepo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.staffRepo.Delete(ctx, id)
}
