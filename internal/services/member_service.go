package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/repository"
	"github.com/fitcore/fitcore-api/internal/statemachine"
	"github.com/fitcore/fitcore-api/internal/storage"
	"github.com/fitcore/fitcore-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// MemberService handles membership lifecycle and the member-related
// receipt call sites: signup, renewal and manual balance payments.
type MemberService struct {
	memberRepo repository.MemberRepository
	ledgerSvc  *LedgerService
	auditSvc   *AuditService
	storage    *storage.LocalStorage
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo repository.MemberRepository, ledgerSvc *LedgerService, auditSvc *AuditService, storage *storage.LocalStorage) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		ledgerSvc:  ledgerSvc,
		auditSvc:   auditSvc,
		storage:    storage,
	}
}

// SignupInput carries a new subscription
type SignupInput struct {
	MemberNumber      int64 // 0 = assign automatically
	Name              string
	Phone             string
	SubscriptionStart time.Time
	SubscriptionEnd   time.Time
	Price             decimal.Decimal
	Paid              decimal.Decimal
	PaymentMethod     string
	Notes             *string
}

// Signup creates a member and issues the signup receipt. The member
// write and the receipt issuance are deliberately not wrapped in one
// transaction: if the receipt fails after the member was created, the
// member is kept and a PartialFailure is returned so the operator can
// reissue manually.
func (s *MemberService) Signup(ctx context.Context, in SignupInput) (*models.Member, *models.Receipt, error) {
	if in.Name == "" {
		return nil, nil, NewValidationError("name", "is required")
	}
	if in.Price.IsNegative() || in.Paid.IsNegative() {
		return nil, nil, NewValidationError("price", "must not be negative")
	}
	if in.Paid.GreaterThan(in.Price) {
		return nil, nil, NewValidationError("paid", "must not exceed price")
	}
	if in.SubscriptionEnd.Before(in.SubscriptionStart) {
		return nil, nil, NewValidationError("subscription_end", "must not precede start")
	}

	number := in.MemberNumber
	if number == 0 {
		next, err := s.memberRepo.NextMemberNumber(ctx)
		if err != nil {
			return nil, nil, err
		}
		number = next
	}

	member := &models.Member{
		MemberNumber:      number,
		Name:              in.Name,
		Phone:             in.Phone,
		SubscriptionStart: in.SubscriptionStart,
		SubscriptionEnd:   in.SubscriptionEnd,
		Price:             in.Price,
		Paid:              in.Paid,
		Status:            models.MemberStatusActive,
		Notes:             in.Notes,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, nil, err
	}

	receipt, err := s.ledgerSvc.Issue(ctx, IssueInput{
		Type:          models.ReceiptTypeMember,
		Amount:        in.Paid,
		PaymentMethod: in.PaymentMethod,
		Details: models.NewMemberDetails(models.MemberDetails{
			MemberNumber:      member.MemberNumber,
			Name:              member.Name,
			SubscriptionStart: member.SubscriptionStart.Format("2006-01-02"),
			SubscriptionEnd:   member.SubscriptionEnd.Format("2006-01-02"),
			Price:             member.Price,
		}),
		MemberID: &member.ID,
	})
	if err != nil {
		logger.Warn("member created but receipt failed",
			"member_id", member.ID, "error", err)
		return member, nil, &PartialFailure{Entity: "member", Err: err}
	}

	return member, receipt, nil
}

// RenewInput carries a subscription renewal
type RenewInput struct {
	NewEnd        time.Time
	Price         decimal.Decimal
	Paid          decimal.Decimal
	PaymentMethod string
}

// Renew extends the subscription window and issues the renewal receipt.
// Same partial-failure contract as Signup.
func (s *MemberService) Renew(ctx context.Context, id uint, in RenewInput) (*models.Member, *models.Receipt, error) {
	if in.Price.IsNegative() || in.Paid.IsNegative() {
		return nil, nil, NewValidationError("price", "must not be negative")
	}
	if in.Paid.GreaterThan(in.Price) {
		return nil, nil, NewValidationError("paid", "must not exceed price")
	}

	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, ErrNotFound
	}

	if in.NewEnd.Before(member.SubscriptionEnd) && in.NewEnd.Before(time.Now()) {
		return nil, nil, NewValidationError("new_end", "must extend the subscription")
	}

	mfsm := statemachine.NewMembershipFSM(member)
	if err := mfsm.Renew(ctx); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	previousEnd := member.SubscriptionEnd
	member.SubscriptionStart = previousEnd
	if previousEnd.Before(time.Now()) {
		// lapsed memberships restart today instead of backfilling
		member.SubscriptionStart = time.Now()
	}
	member.SubscriptionEnd = in.NewEnd
	member.Price = in.Price
	member.Paid = in.Paid

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, nil, err
	}

	receipt, err := s.ledgerSvc.Issue(ctx, IssueInput{
		Type:          models.ReceiptTypeMember,
		Amount:        in.Paid,
		PaymentMethod: in.PaymentMethod,
		Details: models.NewRenewalDetails(models.RenewalDetails{
			MemberNumber: member.MemberNumber,
			Name:         member.Name,
			PreviousEnd:  previousEnd.Format("2006-01-02"),
			NewEnd:       member.SubscriptionEnd.Format("2006-01-02"),
			Price:        member.Price,
		}),
		MemberID: &member.ID,
	})
	if err != nil {
		logger.Warn("membership renewed but receipt failed",
			"member_id", member.ID, "error", err)
		return member, nil, &PartialFailure{Entity: "renewal", Err: err}
	}

	return member, receipt, nil
}

// RecordPayment applies a manual payment against the member's remaining
// balance and issues a payment receipt through the ledger. The receipt
// number comes from the shared counter like every other path.
func (s *MemberService) RecordPayment(ctx context.Context, id uint, amount decimal.Decimal, paymentMethod, note string) (*models.Member, *models.Receipt, error) {
	if !amount.IsPositive() {
		return nil, nil, NewValidationError("amount", "must be positive")
	}

	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, ErrNotFound
	}

	remainingBefore := member.Remaining()
	if amount.GreaterThan(remainingBefore) {
		return nil, nil, NewValidationError("amount", "exceeds remaining balance")
	}

	member.Paid = member.Paid.Add(amount)
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, nil, err
	}

	receipt, err := s.ledgerSvc.Issue(ctx, IssueInput{
		Type:          models.ReceiptTypePayment,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		Details: models.NewPaymentDetails(models.PaymentDetails{
			MemberNumber:    member.MemberNumber,
			Name:            member.Name,
			RemainingBefore: remainingBefore,
			RemainingAfter:  member.Remaining(),
			Note:            note,
		}),
		MemberID: &member.ID,
	})
	if err != nil {
		logger.Warn("payment recorded but receipt failed",
			"member_id", member.ID, "error", err)
		return member, nil, &PartialFailure{Entity: "payment", Err: err}
	}

	return member, receipt, nil
}

// Get returns one member by id
func (s *MemberService) Get(ctx context.Context, id uint) (*models.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return member, nil
}

// List returns a page of members
func (s *MemberService) List(ctx context.Context, query *repository.ListQuery) ([]models.Member, int64, error) {
	return s.memberRepo.List(ctx, query)
}

// UpdateInput carries editable member fields
type UpdateInput struct {
	Name  string
	Phone string
	Notes *string
}

// Update edits contact fields. Subscription and money fields only move
// through Renew and RecordPayment.
func (s *MemberService) Update(ctx context.Context, id uint, in UpdateInput) (*models.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if in.Name != "" {
		member.Name = in.Name
	}
	if in.Phone != "" {
		member.Phone = in.Phone
	}
	if in.Notes != nil {
		member.Notes = in.Notes
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes a member record. Issued receipts keep their snapshot
// and stay in the ledger.
func (s *MemberService) Delete(ctx context.Context, id uint) error {
	if _, err := s.memberRepo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.memberRepo.Delete(ctx, id)
}

// Freeze pauses an active membership
func (s *MemberService) Freeze(ctx context.Context, id uint) (*models.Member, error) {
	return s.transition(ctx, id, func(m *statemachine.MembershipFSM) error {
		return m.Freeze(ctx)
	})
}

// Unfreeze resumes a frozen membership
func (s *MemberService) Unfreeze(ctx context.Context, id uint) (*models.Member, error) {
	return s.transition(ctx, id, func(m *statemachine.MembershipFSM) error {
		return m.Unfreeze(ctx)
	})
}

// Cancel terminates a membership
func (s *MemberService) Cancel(ctx context.Context, id uint) (*models.Member, error) {
	return s.transition(ctx, id, func(m *statemachine.MembershipFSM) error {
		return m.Cancel(ctx)
	})
}

func (s *MemberService) transition(ctx context.Context, id uint, event func(*statemachine.MembershipFSM) error) (*models.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	mfsm := statemachine.NewMembershipFSM(member)
	if err := event(mfsm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	if err := s.memberRepo.UpdateStatus(ctx, member.ID, member.Status); err != nil {
		return nil, err
	}
	return member, nil
}

// ExpireLapsed flips active or frozen members whose window ended to
// expired. Run daily by the job scheduler; returns how many changed.
func (s *MemberService) ExpireLapsed(ctx context.Context, asOf time.Time) (int, error) {
	lapsed, err := s.memberRepo.FindLapsed(ctx, asOf)
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range lapsed {
		member := &lapsed[i]
		mfsm := statemachine.NewMembershipFSM(member)
		if err := mfsm.Expire(ctx); err != nil {
			logger.Warn("could not expire membership",
				"member_id", member.ID, "error", err)
			continue
		}
		if err := s.memberRepo.UpdateStatus(ctx, member.ID, member.Status); err != nil {
			logger.Error("failed to persist expiry",
				"member_id", member.ID, "error", err)
			continue
		}
		expired++
	}

	if expired > 0 {
		logger.Info("membership expiry pass", "expired", expired)
	}
	return expired, nil
}

// UploadPhoto stores a member photo and records its path
func (s *MemberService) UploadPhoto(ctx context.Context, id uint, file multipart.File, header *multipart.FileHeader) (*models.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if !storage.IsValidImageType(header.Header.Get("Content-Type")) {
		return nil, NewValidationError("photo", "must be a JPEG or PNG image")
	}
	if header.Size > storage.MaxFileSize() {
		return nil, NewValidationError("photo", "exceeds the maximum allowed size")
	}

	path, err := s.storage.Upload(file, header, "members")
	if err != nil {
		return nil, err
	}

	if member.PhotoPath != nil && *member.PhotoPath != "" {
		_ = s.storage.Delete(*member.PhotoPath)
	}

	member.PhotoPath = &path
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// PhotoPath returns the stored photo path for serving, empty if none
func (s *MemberService) PhotoPath(ctx context.Context, id uint) (string, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return "", ErrNotFound
	}
	if member.PhotoPath == nil || *member.PhotoPath == "" {
		return "", ErrNotFound
	}
	return s.storage.GetFullPath(*member.PhotoPath), nil
}
