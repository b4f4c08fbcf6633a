package services

import (
	"context"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/repository"
	"github.com/fitcore/fitcore-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// DayPassService handles day-use and InBody visits and their receipt
// call site.
type DayPassService struct {
	dayPassRepo repository.DayPassRepository
	ledgerSvc   *LedgerService
}

// NewDayPassService creates a new day pass service
func NewDayPassService(dayPassRepo repository.DayPassRepository, ledgerSvc *LedgerService) *DayPassService {
	return &DayPassService{
		dayPassRepo: dayPassRepo,
		ledgerSvc:   ledgerSvc,
	}
}

// EntryInput carries a day-use or InBody entry
type EntryInput struct {
	Kind          string
	Name          string
	Phone         string
	Amount        decimal.Decimal
	PaymentMethod string
}

// Enter records the visit and issues its receipt. The entry is kept
// when only the receipt fails; that surfaces as a PartialFailure.
func (s *DayPassService) Enter(ctx context.Context, in EntryInput) (*models.DayPass, *models.Receipt, error) {
	if !models.ValidDayPassKind(in.Kind) {
		return nil, nil, NewValidationError("kind", "must be day_use or inbody")
	}
	if in.Name == "" {
		return nil, nil, NewValidationError("name", "is required")
	}
	if in.Amount.IsNegative() {
		return nil, nil, NewValidationError("amount", "must not be negative")
	}

	pass := &models.DayPass{
		Kind:          in.Kind,
		Name:          in.Name,
		Phone:         in.Phone,
		Amount:        in.Amount,
		PaymentMethod: models.NormalizePaymentMethod(in.PaymentMethod),
	}

	if err := s.dayPassRepo.Create(ctx, pass); err != nil {
		return nil, nil, err
	}

	receipt, err := s.ledgerSvc.Issue(ctx, IssueInput{
		Type:          pass.ReceiptType(),
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Details: models.NewDayUseDetails(models.DayUseDetails{
			Name: pass.Name,
			Kind: pass.Kind,
		}),
		DayPassID: &pass.ID,
	})
	if err != nil {
		logger.Warn("day pass created but receipt failed",
			"day_pass_id", pass.ID, "error", err)
		return pass, nil, &PartialFailure{Entity: "day pass", Err: err}
	}

	return pass, receipt, nil
}

// Get returns one day pass by id
func (s *DayPassService) Get(ctx context.Context, id uint) (*models.DayPass, error) {
	pass, err := s.dayPassRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return pass, nil
}

// List returns a page of day passes
func (s *DayPassService) List(ctx context.Context, query *repository.ListQuery) ([]models.DayPass, int64, error) {
	return s.dayPassRepo.List(ctx, query)
}

// Delete removes a day pass entry. The issued receipt stays in the
// ledger untouched.
func (s *DayPassService) Delete(ctx context.Context, id uint) error {
	if _, err := s.dayPassRepo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.dayPassRepo.Delete(ctx, id)
}
