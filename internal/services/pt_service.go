package services

import (
	"context"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/repository"
	"github.com/fitcore/fitcore-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// PTService handles personal-training packages and their receipt call
// site (the package sale).
type PTService struct {
	ptRepo     repository.PTPackageRepository
	memberRepo repository.MemberRepository
	staffRepo  repository.StaffRepository
	ledgerSvc  *LedgerService
}

// NewPTService creates a new PT service
func NewPTService(ptRepo repository.PTPackageRepository, memberRepo repository.MemberRepository, staffRepo repository.StaffRepository, ledgerSvc *LedgerService) *PTService {
	return &PTService{
		ptRepo:     ptRepo,
		memberRepo: memberRepo,
		staffRepo:  staffRepo,
		ledgerSvc:  ledgerSvc,
	}
}

// SellInput carries a PT package sale
type SellInput struct {
	MemberID      *uint
	ClientName    string
	CoachID       *uint
	Sessions      int
	Price         decimal.Decimal
	Paid          decimal.Decimal
	PaymentMethod string
}

// Sell creates a PT package and issues its sale receipt. The package is
// kept when only the receipt fails; that surfaces as a PartialFailure.
func (s *PTService) Sell(ctx context.Context, in SellInput) (*models.PTPackage, *models.Receipt, error) {
	if in.Sessions < 1 {
		return nil, nil, NewValidationError("sessions", "must be at least 1")
	}
	if in.Price.IsNegative() || in.Paid.IsNegative() {
		return nil, nil, NewValidationError("price", "must not be negative")
	}
	if in.Paid.GreaterThan(in.Price) {
		return nil, nil, NewValidationError("paid", "must not exceed price")
	}

	clientName := in.ClientName
	if in.MemberID != nil {
		member, err := s.memberRepo.FindByID(ctx, *in.MemberID)
		if err != nil {
			return nil, nil, NewValidationError("member_id", "member not found")
		}
		clientName = member.Name
	}
	if clientName == "" {
		return nil, nil, NewValidationError("client_name", "is required for walk-in clients")
	}

	coachName := ""
	if in.CoachID != nil {
		coach, err := s.staffRepo.FindByID(ctx, *in.CoachID)
		if err != nil {
			return nil, nil, NewValidationError("coach_id", "coach not found")
		}
		coachName = coach.Name
	}

	pkg := &models.PTPackage{
		MemberID:          in.MemberID,
		ClientName:        clientName,
		CoachID:           in.CoachID,
		TotalSessions:     in.Sessions,
		RemainingSessions: in.Sessions,
		Price:             in.Price,
		Paid:              in.Paid,
	}

	if err := s.ptRepo.Create(ctx, pkg); err != nil {
		return nil, nil, err
	}

	receipt, err := s.ledgerSvc.Issue(ctx, IssueInput{
		Type:          models.ReceiptTypePT,
		Amount:        in.Paid,
		PaymentMethod: in.PaymentMethod,
		Details: models.NewPTDetails(models.PTDetails{
			ClientName: clientName,
			CoachName:  coachName,
			Sessions:   in.Sessions,
			Price:      in.Price,
		}),
		PTPackageID: &pkg.ID,
	})
	if err != nil {
		logger.Warn("PT package created but receipt failed",
			"pt_package_id", pkg.ID, "error", err)
		return pkg, nil, &PartialFailure{Entity: "pt package", Err: err}
	}

	return pkg, receipt, nil
}

// UseSession consumes one session from the package
func (s *PTService) UseSession(ctx context.Context, id uint) (*models.PTPackage, error) {
	if _, err := s.ptRepo.FindByID(ctx, id); err != nil {
		return nil, ErrNotFound
	}

	ok, err := s.ptRepo.DecrementSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoSessionsLeft
	}

	return s.ptRepo.FindByID(ctx, id)
}

// Get returns one PT package by id
func (s *PTService) Get(ctx context.Context, id uint) (*models.PTPackage, error) {
	pkg, err := s.ptRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return pkg, nil
}

// List returns a page of PT packages
func (s *PTService) List(ctx context.Context, query *repository.ListQuery) ([]models.PTPackage, int64, error) {
	return s.ptRepo.List(ctx, query)
}

// Delete removes a PT package
func (s *PTService) Delete(ctx context.Context, id uint) error {
	if _, err := s.ptRepo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.ptRepo.Delete(ctx, id)
}
