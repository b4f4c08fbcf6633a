package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleReport(t *testing.T) *models.ClosingReport {
	t.Helper()
	loc := time.UTC
	staffID := uint(3)
	receipts := []models.Receipt{
		{ReceiptNumber: 1000, Type: models.ReceiptTypeMember, Amount: decimal.NewFromInt(500), PaymentMethod: models.PaymentMethodCash, CreatedAt: day(t, "2025-01-10T09:00:00", loc)},
		{ReceiptNumber: 1001, Type: models.ReceiptTypePT, Amount: decimal.NewFromInt(300), PaymentMethod: models.PaymentMethodVisa, CreatedAt: day(t, "2025-01-10T18:00:00", loc)},
	}
	expenses := []models.Expense{
		{Type: models.ExpenseTypeStaffLoan, Amount: decimal.NewFromInt(100), StaffID: &staffID, Staff: &models.Staff{ID: staffID, Name: "Mona"}, CreatedAt: day(t, "2025-01-10T12:00:00", loc)},
	}
	from := day(t, "2025-01-10T00:00:00", loc)
	to := day(t, "2025-01-10T23:59:59", loc)
	return BuildClosingReport(receipts, expenses, from, to, loc)
}

func TestExportService_ExportCSV(t *testing.T) {
	service := NewExportService(nil)

	data, filename, err := service.ExportCSV(context.Background(), sampleReport(t))
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	csv := string(data)
	assert.Contains(t, csv, "2025-01-10")
	assert.Contains(t, csv, "500.00")
	assert.Contains(t, csv, "300.00")
	assert.Contains(t, csv, "Mona")
}

func TestExportService_ExportXLSX(t *testing.T) {
	service := NewExportService(nil)

	data, filename, err := service.ExportXLSX(context.Background(), sampleReport(t))
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))
	assert.NotEmpty(t, data)
}

func TestExportService_ExportPDF(t *testing.T) {
	service := NewExportService(nil)

	data, filename, err := service.ExportPDF(context.Background(), sampleReport(t))
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	assert.Contains(t, string(data[:8]), "%PDF")
}
