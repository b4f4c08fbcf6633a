package services

import (
	"context"
	"testing"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type mockDayPassRepo struct {
	repository.DayPassRepository
	mockCreate func(ctx context.Context, pass *models.DayPass) error
}

func (m *mockDayPassRepo) Create(ctx context.Context, pass *models.DayPass) error {
	return m.mockCreate(ctx, pass)
}

func TestDayPassService_Enter_DayUse(t *testing.T) {
	passRepo := &mockDayPassRepo{}
	ledgerRepo := &mockLedgerRepo{}
	service := NewDayPassService(passRepo, NewLedgerService(ledgerRepo, nil))

	passRepo.mockCreate = func(ctx context.Context, pass *models.DayPass) error {
		pass.ID = 21
		return nil
	}
	var issued *models.Receipt
	ledgerRepo.mockIssue = func(ctx context.Context, receipt *models.Receipt) error {
		receipt.ReceiptNumber = 1020
		issued = receipt
		return nil
	}

	pass, receipt, err := service.Enter(context.Background(), EntryInput{
		Kind:   models.DayPassKindDayUse,
		Name:   "Guest",
		Amount: decimal.NewFromInt(100),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1020), receipt.ReceiptNumber)
	assert.Equal(t, models.ReceiptTypeDayUse, issued.Type)
	assert.Equal(t, pass.ID, *issued.DayPassID)
	assert.Equal(t, models.PaymentMethodCash, pass.PaymentMethod)
}

func TestDayPassService_Enter_InBodyGetsInBodyReceipt(t *testing.T) {
	passRepo := &mockDayPassRepo{}
	ledgerRepo := &mockLedgerRepo{}
	service := NewDayPassService(passRepo, NewLedgerService(ledgerRepo, nil))

	passRepo.mockCreate = func(ctx context.Context, pass *models.DayPass) error {
		pass.ID = 22
		return nil
	}
	var issued *models.Receipt
	ledgerRepo.mockIssue = func(ctx context.Context, receipt *models.Receipt) error {
		receipt.ReceiptNumber = 1021
		issued = receipt
		return nil
	}

	_, _, err := service.Enter(context.Background(), EntryInput{
		Kind:   models.DayPassKindInBody,
		Name:   "Guest",
		Amount: decimal.NewFromInt(150),
	})
	assert.NoError(t, err)
	assert.Equal(t, models.ReceiptTypeInBody, issued.Type)
	assert.Equal(t, models.DayPassKindInBody, issued.ItemDetails.DayUse.Kind)
}

func TestDayPassService_Enter_RejectsUnknownKind(t *testing.T) {
	service := NewDayPassService(&mockDayPassRepo{}, NewLedgerService(&mockLedgerRepo{}, nil))

	_, _, err := service.Enter(context.Background(), EntryInput{
		Kind:   "sauna",
		Name:   "Guest",
		Amount: decimal.NewFromInt(50),
	})
	assert.True(t, IsValidation(err))
}

func TestDayPassService_Enter_KeepsEntryOnReceiptFailure(t *testing.T) {
	passRepo := &mockDayPassRepo{}
	ledgerRepo := &mockLedgerRepo{}
	service := NewDayPassService(passRepo, NewLedgerService(ledgerRepo, nil))

	passRepo.mockCreate = func(ctx context.Context, pass *models.DayPass) error {
		pass.ID = 23
		return nil
	}
	ledgerRepo.mockIssue = func(ctx context.Context, receipt *models.Receipt) error {
		return repository.ErrCounterConflict
	}

	pass, receipt, err := service.Enter(context.Background(), EntryInput{
		Kind:   models.DayPassKindDayUse,
		Name:   "Guest",
		Amount: decimal.NewFromInt(100),
	})
	assert.NotNil(t, pass)
	assert.Nil(t, receipt)
	assert.True(t, IsPartialFailure(err))
}
