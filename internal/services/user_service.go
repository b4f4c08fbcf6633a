package services

import (
	"context"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/repository"
)

// UserService handles staff account management
type UserService struct {
	userRepo repository.UserRepository
	auditSvc *AuditService
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, auditSvc *AuditService) *UserService {
	return &UserService{
		userRepo: userRepo,
		auditSvc: auditSvc,
	}
}

// CreateUserInput carries a new staff account
type CreateUserInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Role     string
}

// Create registers a staff account
func (s *UserService) Create(ctx context.Context, createdBy uint, in CreateUserInput) (*models.User, error) {
	if in.Email == "" {
		return nil, NewValidationError("email", "is required")
	}
	if len(in.Password) < 8 {
		return nil, NewValidationError("password", "must be at least 8 characters")
	}
	if in.Role != models.RoleAdmin && in.Role != models.RoleReception {
		return nil, NewValidationError("role", "must be admin or reception")
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:             in.Email,
		EncryptedPassword: hash,
		FullName:          in.FullName,
		Phone:             in.Phone,
		Role:              in.Role,
		Status:            models.StatusActive,
		CreatedBy:         &createdBy,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	_ = s.auditSvc.Log(ctx, createdBy, "CREATE", "User", user.ID, "staff account created", "", "")
	return user, nil
}

// Get returns one user by id
func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// List returns a page of users
func (s *UserService) List(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error) {
	return s.userRepo.List(ctx, query)
}

// UpdateUserInput carries editable account fields
type UpdateUserInput struct {
	FullName string
	Phone    string
	Role     string
	Status   string
	Password string
}

// Update edits a staff account
func (s *UserService) Update(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.Role != "" {
		if in.Role != models.RoleAdmin && in.Role != models.RoleReception {
			return nil, NewValidationError("role", "must be admin or reception")
		}
		user.Role = in.Role
	}
	if in.Status != "" {
		if in.Status != models.StatusActive && in.Status != models.StatusInactive {
			return nil, NewValidationError("status", "must be active or inactive")
		}
		user.Status = in.Status
	}
	if in.Password != "" {
		if len(in.Password) < 8 {
			return nil, NewValidationError("password", "must be at least 8 characters")
		}
		hash, err := HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.EncryptedPassword = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate soft-deletes a staff account
func (s *UserService) Deactivate(ctx context.Context, id uint) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.userRepo.SoftDelete(ctx, id)
}
