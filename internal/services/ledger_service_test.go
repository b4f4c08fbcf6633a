package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type mockLedgerRepo struct {
	repository.LedgerRepository
	mockIssue       func(ctx context.Context, receipt *models.Receipt) error
	mockPeekNext    func(ctx context.Context) (int64, error)
	mockReset       func(ctx context.Context, newStart int64) (int64, error)
	mockAdvancePast func(ctx context.Context, issued int64) error
}

func (m *mockLedgerRepo) Issue(ctx context.Context, receipt *models.Receipt) error {
	return m.mockIssue(ctx, receipt)
}

func (m *mockLedgerRepo) PeekNext(ctx context.Context) (int64, error) {
	return m.mockPeekNext(ctx)
}

func (m *mockLedgerRepo) ResetCounter(ctx context.Context, newStart int64) (int64, error) {
	return m.mockReset(ctx, newStart)
}

func (m *mockLedgerRepo) AdvancePast(ctx context.Context, issued int64) error {
	return m.mockAdvancePast(ctx, issued)
}

func TestLedgerService_Issue_RejectsUnknownType(t *testing.T) {
	service := NewLedgerService(&mockLedgerRepo{}, nil)

	receipt, err := service.Issue(context.Background(), IssueInput{
		Type:   "subscription",
		Amount: decimal.NewFromInt(100),
	})
	assert.Nil(t, receipt)
	assert.True(t, IsValidation(err))
}

func TestLedgerService_Issue_RejectsNegativeAmount(t *testing.T) {
	service := NewLedgerService(&mockLedgerRepo{}, nil)

	receipt, err := service.Issue(context.Background(), IssueInput{
		Type:   models.ReceiptTypeMember,
		Amount: decimal.NewFromInt(-5),
	})
	assert.Nil(t, receipt)
	assert.True(t, IsValidation(err))
}

func TestLedgerService_Issue_RejectsMultipleLinks(t *testing.T) {
	service := NewLedgerService(&mockLedgerRepo{}, nil)

	memberID := uint(1)
	ptID := uint(2)
	receipt, err := service.Issue(context.Background(), IssueInput{
		Type:        models.ReceiptTypeMember,
		Amount:      decimal.NewFromInt(100),
		MemberID:    &memberID,
		PTPackageID: &ptID,
	})
	assert.Nil(t, receipt)
	assert.True(t, IsValidation(err))
}

func TestLedgerService_Issue_AssignsNumberAndDefaultsToCash(t *testing.T) {
	mockRepo := &mockLedgerRepo{}
	service := NewLedgerService(mockRepo, nil)

	mockRepo.mockIssue = func(ctx context.Context, receipt *models.Receipt) error {
		receipt.ReceiptNumber = 1000
		return nil
	}

	receipt, err := service.Issue(context.Background(), IssueInput{
		Type:   models.ReceiptTypeMember,
		Amount: decimal.NewFromInt(500),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), receipt.ReceiptNumber)
	assert.Equal(t, models.PaymentMethodCash, receipt.PaymentMethod)
}

func TestLedgerService_Issue_NormalizesUnknownMethodToCash(t *testing.T) {
	mockRepo := &mockLedgerRepo{}
	service := NewLedgerService(mockRepo, nil)

	mockRepo.mockIssue = func(ctx context.Context, receipt *models.Receipt) error {
		receipt.ReceiptNumber = 1001
		return nil
	}

	receipt, err := service.Issue(context.Background(), IssueInput{
		Type:          models.ReceiptTypeDayUse,
		Amount:        decimal.NewFromInt(50),
		PaymentMethod: "cheque",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentMethodCash, receipt.PaymentMethod)
}

func TestLedgerService_Issue_RecoversFromNumberCollision(t *testing.T) {
	mockRepo := &mockLedgerRepo{}
	service := NewLedgerService(mockRepo, nil)

	var advancedPast []int64
	attempt := 0
	mockRepo.mockIssue = func(ctx context.Context, receipt *models.Receipt) error {
		attempt++
		if attempt == 1 {
			// counter was rebased onto an already-issued number
			receipt.ReceiptNumber = 1500
			return repository.ErrReceiptNumberTaken
		}
		receipt.ReceiptNumber = 2001
		return nil
	}
	mockRepo.mockAdvancePast = func(ctx context.Context, issued int64) error {
		advancedPast = append(advancedPast, issued)
		return nil
	}

	receipt, err := service.Issue(context.Background(), IssueInput{
		Type:   models.ReceiptTypePT,
		Amount: decimal.NewFromInt(300),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2001), receipt.ReceiptNumber)
	assert.Equal(t, []int64{1500}, advancedPast)
	assert.Equal(t, 2, attempt)
}

func TestLedgerService_Issue_GivesUpAfterRetryBudget(t *testing.T) {
	mockRepo := &mockLedgerRepo{}
	service := NewLedgerService(mockRepo, nil)

	attempts := 0
	mockRepo.mockIssue = func(ctx context.Context, receipt *models.Receipt) error {
		attempts++
		receipt.ReceiptNumber = int64(1000 + attempts)
		return repository.ErrReceiptNumberTaken
	}
	mockRepo.mockAdvancePast = func(ctx context.Context, issued int64) error {
		return nil
	}

	receipt, err := service.Issue(context.Background(), IssueInput{
		Type:   models.ReceiptTypeMember,
		Amount: decimal.NewFromInt(100),
	})
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, ErrConcurrency)
	assert.Equal(t, issueRetryBudget, attempts)
}

func TestLedgerService_Issue_RetriesCounterConflict(t *testing.T) {
	mockRepo := &mockLedgerRepo{}
	service := NewLedgerService(mockRepo, nil)

	attempt := 0
	mockRepo.mockIssue = func(ctx context.Context, receipt *models.Receipt) error {
		attempt++
		if attempt == 1 {
			return repository.ErrCounterConflict
		}
		receipt.ReceiptNumber = 1000
		return nil
	}

	receipt, err := service.Issue(context.Background(), IssueInput{
		Type:   models.ReceiptTypeInBody,
		Amount: decimal.NewFromInt(150),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), receipt.ReceiptNumber)
}

func TestLedgerService_Issue_NonRetryableErrorPassesThrough(t *testing.T) {
	mockRepo := &mockLedgerRepo{}
	service := NewLedgerService(mockRepo, nil)

	boom := errors.New("connection refused")
	attempts := 0
	mockRepo.mockIssue = func(ctx context.Context, receipt *models.Receipt) error {
		attempts++
		return boom
	}

	receipt, err := service.Issue(context.Background(), IssueInput{
		Type:   models.ReceiptTypePayment,
		Amount: decimal.NewFromInt(75),
	})
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
}

func TestLedgerService_PeekNext_DoesNotAdvance(t *testing.T) {
	mockRepo := &mockLedgerRepo{}
	service := NewLedgerService(mockRepo, nil)

	calls := 0
	mockRepo.mockPeekNext = func(ctx context.Context) (int64, error) {
		calls++
		return 1042, nil
	}

	first, err := service.PeekNext(context.Background())
	assert.NoError(t, err)
	second, err := service.PeekNext(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(1042), first)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, calls)
}

func TestLedgerService_ResetCounter_RejectsValuesBelowOne(t *testing.T) {
	service := NewLedgerService(&mockLedgerRepo{}, nil)

	_, err := service.ResetCounter(context.Background(), 1, 0)
	assert.True(t, IsValidation(err))

	_, err = service.ResetCounter(context.Background(), 1, -10)
	assert.True(t, IsValidation(err))
}

func TestLedgerService_ResetCounter_AcceptsAnyPositiveStart(t *testing.T) {
	mockRepo := &mockLedgerRepo{}
	service := NewLedgerService(mockRepo, nil)

	var got int64
	mockRepo.mockReset = func(ctx context.Context, newStart int64) (int64, error) {
		got = newStart
		return newStart, nil
	}

	// rebasing below issued numbers is allowed; the collision is
	// resolved at the next issuance
	value, err := service.ResetCounter(context.Background(), 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), value)
	assert.Equal(t, int64(1), got)
}
