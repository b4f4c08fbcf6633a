package services

import (
	"context"
	"testing"
	"time"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type mockMemberRepo struct {
	repository.MemberRepository
	mockFindByID         func(ctx context.Context, id uint) (*models.Member, error)
	mockCreate           func(ctx context.Context, member *models.Member) error
	mockUpdate           func(ctx context.Context, member *models.Member) error
	mockUpdateStatus     func(ctx context.Context, id uint, status string) error
	mockNextMemberNumber func(ctx context.Context) (int64, error)
}

func (m *mockMemberRepo) FindByID(ctx context.Context, id uint) (*models.Member, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockMemberRepo) Create(ctx context.Context, member *models.Member) error {
	return m.mockCreate(ctx, member)
}

func (m *mockMemberRepo) Update(ctx context.Context, member *models.Member) error {
	return m.mockUpdate(ctx, member)
}

func (m *mockMemberRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	return m.mockUpdateStatus(ctx, id, status)
}

func (m *mockMemberRepo) NextMemberNumber(ctx context.Context) (int64, error) {
	return m.mockNextMemberNumber(ctx)
}

func newTestMemberService(memberRepo repository.MemberRepository, ledgerRepo repository.LedgerRepository) *MemberService {
	return NewMemberService(memberRepo, NewLedgerService(ledgerRepo, nil), nil, nil)
}

func TestMemberService_Signup_IssuesReceiptThroughLedger(t *testing.T) {
	memberRepo := &mockMemberRepo{}
	ledgerRepo := &mockLedgerRepo{}
	service := newTestMemberService(memberRepo, ledgerRepo)

	memberRepo.mockNextMemberNumber = func(ctx context.Context) (int64, error) {
		return 42, nil
	}
	memberRepo.mockCreate = func(ctx context.Context, member *models.Member) error {
		member.ID = 7
		return nil
	}
	var issued *models.Receipt
	ledgerRepo.mockIssue = func(ctx context.Context, receipt *models.Receipt) error {
		receipt.ReceiptNumber = 1000
		issued = receipt
		return nil
	}

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	member, receipt, err := service.Signup(context.Background(), SignupInput{
		Name:              "Sara",
		SubscriptionStart: start,
		SubscriptionEnd:   start.AddDate(0, 1, 0),
		Price:             decimal.NewFromInt(500),
		Paid:              decimal.NewFromInt(500),
		PaymentMethod:     models.PaymentMethodVisa,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), member.MemberNumber)
	assert.Equal(t, models.MemberStatusActive, member.Status)
	assert.Equal(t, int64(1000), receipt.ReceiptNumber)
	assert.Equal(t, models.ReceiptTypeMember, issued.Type)
	assert.Equal(t, models.DetailKindMember, issued.ItemDetails.Kind)
	assert.Equal(t, member.ID, *issued.MemberID)
}

func TestMemberService_Signup_KeepsMemberOnReceiptFailure(t *testing.T) {
	memberRepo := &mockMemberRepo{}
	ledgerRepo := &mockLedgerRepo{}
	service := newTestMemberService(memberRepo, ledgerRepo)

	memberRepo.mockNextMemberNumber = func(ctx context.Context) (int64, error) {
		return 1, nil
	}
	memberRepo.mockCreate = func(ctx context.Context, member *models.Member) error {
		member.ID = 3
		return nil
	}
	ledgerRepo.mockIssue = func(ctx context.Context, receipt *models.Receipt) error {
		receipt.ReceiptNumber = 1000
		return repository.ErrReceiptNumberTaken
	}
	ledgerRepo.mockAdvancePast = func(ctx context.Context, issued int64) error {
		return nil
	}

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	member, receipt, err := service.Signup(context.Background(), SignupInput{
		Name:              "Omar",
		SubscriptionStart: start,
		SubscriptionEnd:   start.AddDate(0, 1, 0),
		Price:             decimal.NewFromInt(400),
		Paid:              decimal.NewFromInt(400),
	})
	assert.NotNil(t, member)
	assert.Nil(t, receipt)
	assert.True(t, IsPartialFailure(err))
}

func TestMemberService_Signup_RejectsOverpayment(t *testing.T) {
	service := newTestMemberService(&mockMemberRepo{}, &mockLedgerRepo{})

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, _, err := service.Signup(context.Background(), SignupInput{
		Name:              "Sara",
		SubscriptionStart: start,
		SubscriptionEnd:   start.AddDate(0, 1, 0),
		Price:             decimal.NewFromInt(300),
		Paid:              decimal.NewFromInt(400),
	})
	assert.True(t, IsValidation(err))
}

func TestMemberService_RecordPayment_UpdatesBalance(t *testing.T) {
	memberRepo := &mockMemberRepo{}
	ledgerRepo := &mockLedgerRepo{}
	service := newTestMemberService(memberRepo, ledgerRepo)

	memberRepo.mockFindByID = func(ctx context.Context, id uint) (*models.Member, error) {
		return &models.Member{
			ID:           id,
			MemberNumber: 10,
			Name:         "Sara",
			Price:        decimal.NewFromInt(600),
			Paid:         decimal.NewFromInt(400),
			Status:       models.MemberStatusActive,
		}, nil
	}
	memberRepo.mockUpdate = func(ctx context.Context, member *models.Member) error {
		return nil
	}
	var issued *models.Receipt
	ledgerRepo.mockIssue = func(ctx context.Context, receipt *models.Receipt) error {
		receipt.ReceiptNumber = 1010
		issued = receipt
		return nil
	}

	member, receipt, err := service.RecordPayment(context.Background(), 5, decimal.NewFromInt(150), models.PaymentMethodCash, "")
	assert.NoError(t, err)
	assert.True(t, member.Paid.Equal(decimal.NewFromInt(550)))
	assert.True(t, member.Remaining().Equal(decimal.NewFromInt(50)))
	assert.Equal(t, int64(1010), receipt.ReceiptNumber)
	assert.Equal(t, models.ReceiptTypePayment, issued.Type)
	assert.True(t, issued.ItemDetails.Payment.RemainingBefore.Equal(decimal.NewFromInt(200)))
	assert.True(t, issued.ItemDetails.Payment.RemainingAfter.Equal(decimal.NewFromInt(50)))
}

func TestMemberService_RecordPayment_RejectsOverpayment(t *testing.T) {
	memberRepo := &mockMemberRepo{}
	service := newTestMemberService(memberRepo, &mockLedgerRepo{})

	memberRepo.mockFindByID = func(ctx context.Context, id uint) (*models.Member, error) {
		return &models.Member{
			ID:    id,
			Price: decimal.NewFromInt(500),
			Paid:  decimal.NewFromInt(450),
		}, nil
	}

	_, _, err := service.RecordPayment(context.Background(), 5, decimal.NewFromInt(100), models.PaymentMethodCash, "")
	assert.True(t, IsValidation(err))
}

func TestMemberService_Freeze_RejectsNonActiveMember(t *testing.T) {
	memberRepo := &mockMemberRepo{}
	service := newTestMemberService(memberRepo, &mockLedgerRepo{})

	memberRepo.mockFindByID = func(ctx context.Context, id uint) (*models.Member, error) {
		return &models.Member{ID: id, Status: models.MemberStatusCancelled}, nil
	}

	member, err := service.Freeze(context.Background(), 1)
	assert.Nil(t, member)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestMemberService_FreezeUnfreeze_RoundTrip(t *testing.T) {
	memberRepo := &mockMemberRepo{}
	service := newTestMemberService(memberRepo, &mockLedgerRepo{})

	state := models.MemberStatusActive
	memberRepo.mockFindByID = func(ctx context.Context, id uint) (*models.Member, error) {
		return &models.Member{ID: id, Status: state}, nil
	}
	memberRepo.mockUpdateStatus = func(ctx context.Context, id uint, status string) error {
		state = status
		return nil
	}

	member, err := service.Freeze(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, models.MemberStatusFrozen, member.Status)

	member, err = service.Unfreeze(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, models.MemberStatusActive, member.Status)
}
