package services

import (
	"context"
	"time"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/repository"
	"github.com/fitcore/fitcore-api/pkg/logger"
)

// VisitorService handles the walk-in visitor log
type VisitorService struct {
	visitorRepo   repository.VisitorRepository
	retentionDays int
}

// NewVisitorService creates a new visitor service
func NewVisitorService(visitorRepo repository.VisitorRepository, retentionDays int) *VisitorService {
	if retentionDays < 1 {
		retentionDays = 90
	}
	return &VisitorService{
		visitorRepo:   visitorRepo,
		retentionDays: retentionDays,
	}
}

// Create logs a walk-in visitor
func (s *VisitorService) Create(ctx context.Context, name, phone, note string) (*models.Visitor, error) {
	if name == "" {
		return nil, NewValidationError("name", "is required")
	}

	visitor := &models.Visitor{
		Name:  name,
		Phone: phone,
		Note:  note,
	}
	if err := s.visitorRepo.Create(ctx, visitor); err != nil {
		return nil, err
	}
	return visitor, nil
}

// List returns a page of visitor entries
func (s *VisitorService) List(ctx context.Context, query *repository.ListQuery) ([]models.Visitor, int64, error) {
	return s.visitorRepo.List(ctx, query)
}

// Delete removes a visitor entry
func (s *VisitorService) Delete(ctx context.Context, id uint) error {
	if _, err := s.visitorRepo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.visitorRepo.Delete(ctx, id)
}

// PruneOld removes visitor entries past the retention window. Run by
// the job scheduler.
func (s *VisitorService) PruneOld(ctx context.Context) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)
	pruned, err := s.visitorRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if pruned > 0 {
		logger.Info("visitor log pruned", "removed", pruned, "cutoff", cutoff)
	}
	return pruned, nil
}
