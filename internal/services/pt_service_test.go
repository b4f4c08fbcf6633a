package services

import (
	"context"
	"testing"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type mockPTRepo struct {
	repository.PTPackageRepository
	mockFindByID         func(ctx context.Context, id uint) (*models.PTPackage, error)
	mockCreate           func(ctx context.Context, pkg *models.PTPackage) error
	mockDecrementSession func(ctx context.Context, id uint) (bool, error)
}

func (m *mockPTRepo) FindByID(ctx context.Context, id uint) (*models.PTPackage, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockPTRepo) Create(ctx context.Context, pkg *models.PTPackage) error {
	return m.mockCreate(ctx, pkg)
}

func (m *mockPTRepo) DecrementSession(ctx context.Context, id uint) (bool, error) {
	return m.mockDecrementSession(ctx, id)
}

type mockStaffRepo struct {
	repository.StaffRepository
	mockFindByID func(ctx context.Context, id uint) (*models.Staff, error)
}

func (m *mockStaffRepo) FindByID(ctx context.Context, id uint) (*models.Staff, error) {
	return m.mockFindByID(ctx, id)
}

func newTestPTService(ptRepo repository.PTPackageRepository, memberRepo repository.MemberRepository, staffRepo repository.StaffRepository, ledgerRepo repository.LedgerRepository) *PTService {
	return NewPTService(ptRepo, memberRepo, staffRepo, NewLedgerService(ledgerRepo, nil))
}

func TestPTService_Sell_WalkInClient(t *testing.T) {
	ptRepo := &mockPTRepo{}
	ledgerRepo := &mockLedgerRepo{}
	service := newTestPTService(ptRepo, &mockMemberRepo{}, &mockStaffRepo{}, ledgerRepo)

	ptRepo.mockCreate = func(ctx context.Context, pkg *models.PTPackage) error {
		pkg.ID = 11
		return nil
	}
	var issued *models.Receipt
	ledgerRepo.mockIssue = func(ctx context.Context, receipt *models.Receipt) error {
		receipt.ReceiptNumber = 1005
		issued = receipt
		return nil
	}

	pkg, receipt, err := service.Sell(context.Background(), SellInput{
		ClientName:    "Walk-in Client",
		Sessions:      8,
		Price:         decimal.NewFromInt(1200),
		Paid:          decimal.NewFromInt(1200),
		PaymentMethod: models.PaymentMethodWallet,
	})
	assert.NoError(t, err)
	assert.Equal(t, 8, pkg.RemainingSessions)
	assert.Equal(t, int64(1005), receipt.ReceiptNumber)
	assert.Equal(t, models.ReceiptTypePT, issued.Type)
	assert.Equal(t, models.DetailKindPT, issued.ItemDetails.Kind)
	assert.Equal(t, "Walk-in Client", issued.ItemDetails.PT.ClientName)
	assert.Equal(t, pkg.ID, *issued.PTPackageID)
}

func TestPTService_Sell_UnknownMemberRejected(t *testing.T) {
	memberRepo := &mockMemberRepo{}
	service := newTestPTService(&mockPTRepo{}, memberRepo, &mockStaffRepo{}, &mockLedgerRepo{})

	memberRepo.mockFindByID = func(ctx context.Context, id uint) (*models.Member, error) {
		return nil, ErrNotFound
	}

	memberID := uint(99)
	_, _, err := service.Sell(context.Background(), SellInput{
		MemberID: &memberID,
		Sessions: 5,
		Price:    decimal.NewFromInt(800),
		Paid:     decimal.NewFromInt(800),
	})
	assert.True(t, IsValidation(err))
}

func TestPTService_Sell_KeepsPackageOnReceiptFailure(t *testing.T) {
	ptRepo := &mockPTRepo{}
	ledgerRepo := &mockLedgerRepo{}
	service := newTestPTService(ptRepo, &mockMemberRepo{}, &mockStaffRepo{}, ledgerRepo)

	ptRepo.mockCreate = func(ctx context.Context, pkg *models.PTPackage) error {
		pkg.ID = 12
		return nil
	}
	ledgerRepo.mockIssue = func(ctx context.Context, receipt *models.Receipt) error {
		return repository.ErrCounterConflict
	}

	pkg, receipt, err := service.Sell(context.Background(), SellInput{
		ClientName: "Client",
		Sessions:   4,
		Price:      decimal.NewFromInt(600),
		Paid:       decimal.NewFromInt(600),
	})
	assert.NotNil(t, pkg)
	assert.Nil(t, receipt)
	assert.True(t, IsPartialFailure(err))
}

func TestPTService_UseSession_Decrements(t *testing.T) {
	ptRepo := &mockPTRepo{}
	service := newTestPTService(ptRepo, &mockMemberRepo{}, &mockStaffRepo{}, &mockLedgerRepo{})

	remaining := 2
	ptRepo.mockFindByID = func(ctx context.Context, id uint) (*models.PTPackage, error) {
		return &models.PTPackage{ID: id, TotalSessions: 8, RemainingSessions: remaining}, nil
	}
	ptRepo.mockDecrementSession = func(ctx context.Context, id uint) (bool, error) {
		if remaining == 0 {
			return false, nil
		}
		remaining--
		return true, nil
	}

	pkg, err := service.UseSession(context.Background(), 11)
	assert.NoError(t, err)
	assert.Equal(t, 1, pkg.RemainingSessions)
}

func TestPTService_UseSession_Exhausted(t *testing.T) {
	ptRepo := &mockPTRepo{}
	service := newTestPTService(ptRepo, &mockMemberRepo{}, &mockStaffRepo{}, &mockLedgerRepo{})

	ptRepo.mockFindByID = func(ctx context.Context, id uint) (*models.PTPackage, error) {
		return &models.PTPackage{ID: id, TotalSessions: 8, RemainingSessions: 0}, nil
	}
	ptRepo.mockDecrementSession = func(ctx context.Context, id uint) (bool, error) {
		return false, nil
	}

	pkg, err := service.UseSession(context.Background(), 11)
	assert.Nil(t, pkg)
	assert.ErrorIs(t, err, ErrNoSessionsLeft)
}
