package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/repository"
	"github.com/fitcore/fitcore-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// issueRetryBudget bounds how many times an issuance is restarted after
// a retryable conflict before giving up with ErrConcurrency
const issueRetryBudget = 3

// LedgerService owns receipt number assignment. Every paid transaction
// in the system obtains its number here; no caller derives a number any
// other way.
type LedgerService struct {
	ledgerRepo repository.LedgerRepository
	auditSvc   *AuditService
}

// NewLedgerService creates a new ledger service
func NewLedgerService(ledgerRepo repository.LedgerRepository, auditSvc *AuditService) *LedgerService {
	return &LedgerService{
		ledgerRepo: ledgerRepo,
		auditSvc:   auditSvc,
	}
}

// IssueInput carries everything needed to issue one receipt
type IssueInput struct {
	Type          string
	Amount        decimal.Decimal
	PaymentMethod string
	Details       models.ItemDetails
	MemberID      *uint
	PTPackageID   *uint
	DayPassID     *uint
}

// Issue validates the input, assigns the next receipt number and
// persists the receipt atomically. On a retryable conflict the whole
// issuance is restarted with a fresh counter read; a number-collision
// caused by a counter rebase is recovered by advancing past the
// conflicting number first. After the retry budget is exhausted the
// caller gets ErrConcurrency and may retry the full call.
func (s *LedgerService) Issue(ctx context.Context, in IssueInput) (*models.Receipt, error) {
	if !models.ValidReceiptType(in.Type) {
		return nil, NewValidationError("type", fmt.Sprintf("unrecognized receipt type %q", in.Type))
	}
	if in.Amount.IsNegative() {
		return nil, NewValidationError("amount", "must not be negative")
	}
	if countLinks(in.MemberID, in.PTPackageID, in.DayPassID) > 1 {
		return nil, NewValidationError("linked_entity", "at most one linked entity allowed")
	}

	method := models.NormalizePaymentMethod(in.PaymentMethod)

	var lastErr error
	for attempt := 1; attempt <= issueRetryBudget; attempt++ {
		receipt := &models.Receipt{
			Type:          in.Type,
			Amount:        in.Amount,
			PaymentMethod: method,
			ItemDetails:   in.Details,
			MemberID:      in.MemberID,
			PTPackageID:   in.PTPackageID,
			DayPassID:     in.DayPassID,
		}

		err := s.ledgerRepo.Issue(ctx, receipt)
		if err == nil {
			logger.Info("receipt issued",
				"receipt_number", receipt.ReceiptNumber,
				"type", receipt.Type,
				"amount", receipt.Amount.String(),
			)
			return receipt, nil
		}
		lastErr = err

		switch {
		case errors.Is(err, repository.ErrReceiptNumberTaken):
			// The counter was rebased at or below an issued number.
			// Move it past the collision, then reissue from scratch.
			logger.Warn("receipt number collision, advancing counter",
				"receipt_number", receipt.ReceiptNumber,
				"attempt", attempt,
			)
			if aerr := s.ledgerRepo.AdvancePast(ctx, receipt.ReceiptNumber); aerr != nil {
				return nil, aerr
			}
		case errors.Is(err, repository.ErrCounterConflict):
			logger.Warn("receipt counter conflict, retrying", "attempt", attempt)
		default:
			return nil, err
		}
	}

	logger.Error("receipt issuance failed after retries", "error", lastErr)
	return nil, fmt.Errorf("%w: %v", ErrConcurrency, lastErr)
}

// PeekNext returns the number the next receipt will get. Advisory only;
// the value may be stale by the time an issuance happens.
func (s *LedgerService) PeekNext(ctx context.Context) (int64, error) {
	return s.ledgerRepo.PeekNext(ctx)
}

// ResetCounter rebases the sequence to newStart. Succeeds for any value
// >= 1, including values at or below already-issued numbers; such a
// rebase surfaces as a collision on the next issuance and is recovered
// there. Admin-only at the handler layer.
func (s *LedgerService) ResetCounter(ctx context.Context, userID uint, newStart int64) (int64, error) {
	if newStart < 1 {
		return 0, NewValidationError("new_start", "must be >= 1")
	}

	value, err := s.ledgerRepo.ResetCounter(ctx, newStart)
	if err != nil {
		return 0, err
	}

	logger.Info("receipt counter reset", "new_start", newStart, "user_id", userID)
	if s.auditSvc != nil {
		_ = s.auditSvc.Log(ctx, userID, "RESET_COUNTER", "ReceiptCounter",
			models.ReceiptCounterID, fmt.Sprintf("counter rebased to %d", newStart), "", "")
	}
	return value, nil
}

// GetReceipt returns one receipt by id
func (s *LedgerService) GetReceipt(ctx context.Context, id uint) (*models.Receipt, error) {
	receipt, err := s.ledgerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return receipt, nil
}

// ListReceipts returns a page of the receipt log, newest numbers first
func (s *LedgerService) ListReceipts(ctx context.Context, query *repository.ListQuery) ([]models.Receipt, int64, error) {
	return s.ledgerRepo.List(ctx, query)
}

func countLinks(refs ...*uint) int {
	n := 0
	for _, ref := range refs {
		if ref != nil {
			n++
		}
	}
	return n
}
