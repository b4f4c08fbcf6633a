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

type mockExpenseRepo struct {
	repository.ExpenseRepository
	mockFindInWindow func(ctx context.Context, from, to time.Time) ([]models.Expense, error)
}

func (m *mockExpenseRepo) FindInWindow(ctx context.Context, from, to time.Time) ([]models.Expense, error) {
	return m.mockFindInWindow(ctx, from, to)
}

type mockLedgerWindowRepo struct {
	repository.LedgerRepository
	mockFindInWindow func(ctx context.Context, from, to time.Time) ([]models.Receipt, error)
}

func (m *mockLedgerWindowRepo) FindInWindow(ctx context.Context, from, to time.Time) ([]models.Receipt, error) {
	return m.mockFindInWindow(ctx, from, to)
}

func day(t *testing.T, value string, loc *time.Location) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02T15:04:05", value, loc)
	assert.NoError(t, err)
	return parsed
}

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func TestBuildClosingReport_TwoDayWindow(t *testing.T) {
	loc := time.UTC

	receipts := []models.Receipt{
		{ReceiptNumber: 1000, Type: models.ReceiptTypeMember, Amount: dec(500), PaymentMethod: models.PaymentMethodCash, CreatedAt: day(t, "2025-01-10T09:00:00", loc)},
		{ReceiptNumber: 1001, Type: models.ReceiptTypePT, Amount: dec(300), PaymentMethod: models.PaymentMethodVisa, CreatedAt: day(t, "2025-01-10T18:00:00", loc)},
		{ReceiptNumber: 1002, Type: models.ReceiptTypeMember, Amount: dec(200), PaymentMethod: models.PaymentMethodCash, CreatedAt: day(t, "2025-01-11T08:00:00", loc)},
	}
	expenses := []models.Expense{
		{Type: models.ExpenseTypeGym, Amount: dec(100), CreatedAt: day(t, "2025-01-10T12:00:00", loc)},
	}

	from := day(t, "2025-01-10T00:00:00", loc)
	to := day(t, "2025-01-11T23:59:59", loc)

	report := BuildClosingReport(receipts, expenses, from, to, loc)

	assert.Len(t, report.Days, 2)

	// most recent day first
	jan11 := report.Days[0]
	assert.Equal(t, "2025-01-11", jan11.Date)
	assert.True(t, jan11.FloorRevenue.Equal(dec(200)))
	assert.True(t, jan11.PTRevenue.IsZero())
	assert.True(t, jan11.Methods.Cash.Equal(dec(200)))
	assert.True(t, jan11.ExpenseTotal.IsZero())
	assert.Len(t, jan11.Receipts, 1)
	assert.Empty(t, jan11.Expenses)

	jan10 := report.Days[1]
	assert.Equal(t, "2025-01-10", jan10.Date)
	assert.True(t, jan10.FloorRevenue.Equal(dec(500)))
	assert.True(t, jan10.PTRevenue.Equal(dec(300)))
	assert.True(t, jan10.Methods.Cash.Equal(dec(500)))
	assert.True(t, jan10.Methods.Visa.Equal(dec(300)))
	assert.True(t, jan10.ExpenseTotal.Equal(dec(100)))
	assert.Len(t, jan10.Receipts, 2)
	assert.Len(t, jan10.Expenses, 1)

	totals := report.Totals
	assert.True(t, totals.FloorRevenue.Equal(dec(700)))
	assert.True(t, totals.PTRevenue.Equal(dec(300)))
	assert.True(t, totals.TotalRevenue.Equal(dec(1000)))
	assert.True(t, totals.TotalExpenses.Equal(dec(100)))
	assert.True(t, totals.NetProfit.Equal(dec(900)))
}

func TestBuildClosingReport_WindowBoundsAreInclusive(t *testing.T) {
	loc := time.UTC
	from := day(t, "2025-01-10T00:00:00", loc)
	to := day(t, "2025-01-10T23:59:59", loc)

	receipts := []models.Receipt{
		{ReceiptNumber: 1000, Type: models.ReceiptTypeMember, Amount: dec(100), CreatedAt: from},
		{ReceiptNumber: 1001, Type: models.ReceiptTypeMember, Amount: dec(100), CreatedAt: to},
		{ReceiptNumber: 1002, Type: models.ReceiptTypeMember, Amount: dec(100), CreatedAt: to.Add(time.Second)},
	}

	report := BuildClosingReport(receipts, nil, from, to, loc)

	assert.Len(t, report.Days, 1)
	assert.Len(t, report.Days[0].Receipts, 2)
	assert.True(t, report.Totals.TotalRevenue.Equal(dec(200)))
}

func TestBuildClosingReport_BucketsByLocalCalendarDay(t *testing.T) {
	// UTC+2: 22:30 UTC is 00:30 the next local day
	loc := time.FixedZone("UTC+2", 2*60*60)

	receipts := []models.Receipt{
		{ReceiptNumber: 1000, Type: models.ReceiptTypeMember, Amount: dec(100), CreatedAt: time.Date(2025, 3, 5, 21, 30, 0, 0, time.UTC)},
		{ReceiptNumber: 1001, Type: models.ReceiptTypeMember, Amount: dec(100), CreatedAt: time.Date(2025, 3, 5, 22, 30, 0, 0, time.UTC)},
	}

	from := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 6, 23, 59, 59, 0, time.UTC)

	report := BuildClosingReport(receipts, nil, from, to, loc)

	assert.Len(t, report.Days, 2)
	assert.Equal(t, "2025-03-06", report.Days[0].Date)
	assert.Equal(t, "2025-03-05", report.Days[1].Date)
}

func TestBuildClosingReport_StaffLoanSubtotals(t *testing.T) {
	loc := time.UTC
	staffID := uint(7)
	ahmed := &models.Staff{ID: staffID, Name: "Ahmed"}

	expenses := []models.Expense{
		{Type: models.ExpenseTypeStaffLoan, Amount: dec(200), StaffID: &staffID, Staff: ahmed, CreatedAt: day(t, "2025-02-01T10:00:00", loc)},
		{Type: models.ExpenseTypeStaffLoan, Amount: dec(150), StaffID: &staffID, Staff: ahmed, CreatedAt: day(t, "2025-02-01T15:00:00", loc)},
		{Type: models.ExpenseTypeGym, Amount: dec(80), CreatedAt: day(t, "2025-02-01T12:00:00", loc)},
	}

	from := day(t, "2025-02-01T00:00:00", loc)
	to := day(t, "2025-02-01T23:59:59", loc)

	report := BuildClosingReport(nil, expenses, from, to, loc)

	assert.Len(t, report.Days, 1)
	dayTotal := report.Days[0]
	assert.True(t, dayTotal.ExpenseTotal.Equal(dec(430)))
	assert.Len(t, dayTotal.StaffLoans, 1)
	assert.True(t, dayTotal.StaffLoans["Ahmed"].Equal(dec(350)))
	assert.True(t, report.Totals.StaffLoans["Ahmed"].Equal(dec(350)))
	assert.True(t, report.Totals.NetProfit.Equal(dec(-430)))
}

func TestBuildClosingReport_PaymentReceiptsCountAsFloorMethodOnly(t *testing.T) {
	loc := time.UTC
	from := day(t, "2025-02-01T00:00:00", loc)
	to := day(t, "2025-02-01T23:59:59", loc)

	receipts := []models.Receipt{
		{ReceiptNumber: 1000, Type: models.ReceiptTypePayment, Amount: dec(250), PaymentMethod: models.PaymentMethodInstapay, CreatedAt: day(t, "2025-02-01T11:00:00", loc)},
	}

	report := BuildClosingReport(receipts, nil, from, to, loc)

	// balance payments are tracked per method but are neither floor
	// nor PT revenue
	assert.True(t, report.Days[0].FloorRevenue.IsZero())
	assert.True(t, report.Days[0].PTRevenue.IsZero())
	assert.True(t, report.Days[0].Methods.Instapay.Equal(dec(250)))
	assert.True(t, report.Totals.TotalRevenue.IsZero())
}

func TestBuildClosingReport_EmptyWindow(t *testing.T) {
	loc := time.UTC
	from := day(t, "2025-02-01T00:00:00", loc)
	to := day(t, "2025-02-02T23:59:59", loc)

	report := BuildClosingReport(nil, nil, from, to, loc)

	assert.Empty(t, report.Days)
	assert.True(t, report.Totals.TotalRevenue.IsZero())
	assert.True(t, report.Totals.TotalExpenses.IsZero())
	assert.True(t, report.Totals.NetProfit.IsZero())
}

func TestBuildClosingReport_IsDeterministic(t *testing.T) {
	loc := time.UTC
	receipts := []models.Receipt{
		{ReceiptNumber: 1000, Type: models.ReceiptTypeMember, Amount: dec(500), PaymentMethod: models.PaymentMethodCash, CreatedAt: day(t, "2025-01-10T09:00:00", loc)},
		{ReceiptNumber: 1001, Type: models.ReceiptTypePT, Amount: dec(300), PaymentMethod: models.PaymentMethodVisa, CreatedAt: day(t, "2025-01-10T18:00:00", loc)},
	}
	from := day(t, "2025-01-10T00:00:00", loc)
	to := day(t, "2025-01-10T23:59:59", loc)

	first := BuildClosingReport(receipts, nil, from, to, loc)
	second := BuildClosingReport(receipts, nil, from, to, loc)

	assert.Equal(t, first, second)
}

func TestClosingService_Report_RejectsInvertedWindow(t *testing.T) {
	service := NewClosingService(&mockLedgerWindowRepo{}, &mockExpenseRepo{}, time.UTC)

	from := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	report, err := service.Report(context.Background(), from, to)
	assert.Nil(t, report)
	assert.True(t, IsValidation(err))
}

func TestClosingService_Report_LoadsBothWindows(t *testing.T) {
	ledgerRepo := &mockLedgerWindowRepo{}
	expenseRepo := &mockExpenseRepo{}
	service := NewClosingService(ledgerRepo, expenseRepo, time.UTC)

	from := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 11, 23, 59, 59, 0, time.UTC)

	ledgerRepo.mockFindInWindow = func(ctx context.Context, f, tt time.Time) ([]models.Receipt, error) {
		assert.True(t, f.Equal(from))
		assert.True(t, tt.Equal(to))
		return []models.Receipt{
			{ReceiptNumber: 1000, Type: models.ReceiptTypeMember, Amount: dec(500), PaymentMethod: models.PaymentMethodCash, CreatedAt: from.Add(9 * time.Hour)},
		}, nil
	}
	expenseRepo.mockFindInWindow = func(ctx context.Context, f, tt time.Time) ([]models.Expense, error) {
		return []models.Expense{
			{Type: models.ExpenseTypeGym, Amount: dec(100), CreatedAt: from.Add(12 * time.Hour)},
		}, nil
	}

	report, err := service.Report(context.Background(), from, to)
	assert.NoError(t, err)
	assert.True(t, report.Totals.TotalRevenue.Equal(dec(500)))
	assert.True(t, report.Totals.NetProfit.Equal(dec(400)))
}

func TestClosingService_LastSevenDays(t *testing.T) {
	service := NewClosingService(&mockLedgerWindowRepo{}, &mockExpenseRepo{}, time.UTC)

	now := time.Date(2025, 1, 10, 15, 30, 0, 0, time.UTC)
	from, to := service.LastSevenDays(now)

	assert.Equal(t, time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC), from)
	assert.True(t, to.Equal(now))
}
