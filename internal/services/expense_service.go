package services

import (
	"context"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/repository"
	"github.com/shopspring/decimal"
)

// ExpenseService handles gym expenses and staff loans
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
	staffRepo   repository.StaffRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository, staffRepo repository.StaffRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		staffRepo:   staffRepo,
	}
}

// ExpenseInput carries a new or edited expense
type ExpenseInput struct {
	Type        string
	Amount      decimal.Decimal
	Description string
	StaffID     *uint
	IsPaid      bool
}

func (s *ExpenseService) validate(ctx context.Context, in ExpenseInput) error {
	if !models.ValidExpenseType(in.Type) {
		return NewValidationError("type", "must be gym_expense or staff_loan")
	}
	if !in.Amount.IsPositive() {
		return NewValidationError("amount", "must be positive")
	}
	if in.Type == models.ExpenseTypeStaffLoan && in.StaffID == nil {
		return NewValidationError("staff_id", "is required for staff loans")
	}
	if in.StaffID != nil {
		if _, err := s.staffRepo.FindByID(ctx, *in.StaffID); err != nil {
			return NewValidationError("staff_id", "staff member not found")
		}
	}
	return nil
}

// Create records a new expense
func (s *ExpenseService) Create(ctx context.Context, in ExpenseInput) (*models.Expense, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
		StaffID:     in.StaffID,
		IsPaid:      in.IsPaid,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return s.expenseRepo.FindByID(ctx, expense.ID)
}

// Update edits an expense
func (s *ExpenseService) Update(ctx context.Context, id uint, in ExpenseInput) (*models.Expense, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	expense.Type = in.Type
	expense.Amount = in.Amount
	expense.Description = in.Description
	expense.StaffID = in.StaffID
	expense.IsPaid = in.IsPaid
	expense.Staff = nil

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return s.expenseRepo.FindByID(ctx, id)
}

// Get returns one expense by id
func (s *ExpenseService) Get(ctx context.Context, id uint) (*models.Expense, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return expense, nil
}

// List returns a page of expenses
func (s *ExpenseService) List(ctx context.Context, query *repository.ListQuery) ([]models.Expense, int64, error) {
	return s.expenseRepo.List(ctx, query)
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uint) error {
	if _, err := s.expenseRepo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.expenseRepo.Delete(ctx, id)
}

// MarkPaid flips a staff loan to paid
func (s *ExpenseService) MarkPaid(ctx context.Context, id uint) (*models.Expense, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if expense.Type != models.ExpenseTypeStaffLoan {
		return nil, NewValidationError("type", "only staff loans can be marked paid")
	}

	expense.IsPaid = true
	expense.Staff = nil
	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return s.expenseRepo.FindByID(ctx, id)
}
