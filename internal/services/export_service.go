package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"time"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportService renders a closing report as CSV, XLSX or PDF
type ExportService struct {
	closingSvc *ClosingService
}

// NewExportService creates a new export service
func NewExportService(closingSvc *ClosingService) *ExportService {
	return &ExportService{closingSvc: closingSvc}
}

// ExportCSV renders the closing report as CSV
func (s *ExportService) ExportCSV(ctx context.Context, report *models.ClosingReport) ([]byte, string, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write([]string{"Daily Closing Report",
		report.From.Format("2006-01-02") + " to " + report.To.Format("2006-01-02")})
	_ = writer.Write([]string{""})

	_ = writer.Write([]string{"Date", "Floor Revenue", "PT Revenue", "Cash", "Visa", "Instapay", "Wallet", "Expenses"})
	for _, day := range report.Days {
		_ = writer.Write([]string{
			day.Date,
			day.FloorRevenue.StringFixed(2),
			day.PTRevenue.StringFixed(2),
			day.Methods.Cash.StringFixed(2),
			day.Methods.Visa.StringFixed(2),
			day.Methods.Instapay.StringFixed(2),
			day.Methods.Wallet.StringFixed(2),
			day.ExpenseTotal.StringFixed(2),
		})
	}
	_ = writer.Write([]string{""})

	totals := report.Totals
	_ = writer.Write([]string{"Totals"})
	_ = writer.Write([]string{"Total Revenue", totals.TotalRevenue.StringFixed(2)})
	_ = writer.Write([]string{"Floor Revenue", totals.FloorRevenue.StringFixed(2)})
	_ = writer.Write([]string{"PT Revenue", totals.PTRevenue.StringFixed(2)})
	_ = writer.Write([]string{"Total Expenses", totals.TotalExpenses.StringFixed(2)})
	_ = writer.Write([]string{"Net Profit", totals.NetProfit.StringFixed(2)})

	if len(totals.StaffLoans) > 0 {
		_ = writer.Write([]string{""})
		_ = writer.Write([]string{"Staff Loans"})
		for _, name := range sortedLoanNames(totals.StaffLoans) {
			_ = writer.Write([]string{name, totals.StaffLoans[name].StringFixed(2)})
		}
	}

	writer.Flush()

	filename := fmt.Sprintf("closing_report_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// ExportXLSX renders the closing report as an Excel workbook
func (s *ExportService) ExportXLSX(ctx context.Context, report *models.ClosingReport) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Closing"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	_ = f.SetCellValue(sheet, "A1", "Daily Closing Report")
	_ = f.SetCellStyle(sheet, "A1", "A1", headerStyle)
	_ = f.SetCellValue(sheet, "B1", report.From.Format("2006-01-02")+" to "+report.To.Format("2006-01-02"))

	headers := []string{"Date", "Floor Revenue", "PT Revenue", "Cash", "Visa", "Instapay", "Wallet", "Expenses"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 4
	for _, day := range report.Days {
		values := []interface{}{
			day.Date,
			toFloat(day.FloorRevenue),
			toFloat(day.PTRevenue),
			toFloat(day.Methods.Cash),
			toFloat(day.Methods.Visa),
			toFloat(day.Methods.Instapay),
			toFloat(day.Methods.Wallet),
			toFloat(day.ExpenseTotal),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	row++
	totals := report.Totals
	summary := [][2]interface{}{
		{"Total Revenue", toFloat(totals.TotalRevenue)},
		{"Floor Revenue", toFloat(totals.FloorRevenue)},
		{"PT Revenue", toFloat(totals.PTRevenue)},
		{"Total Expenses", toFloat(totals.TotalExpenses)},
		{"Net Profit", toFloat(totals.NetProfit)},
	}
	for _, entry := range summary {
		cellA, _ := excelize.CoordinatesToCellName(1, row)
		cellB, _ := excelize.CoordinatesToCellName(2, row)
		_ = f.SetCellValue(sheet, cellA, entry[0])
		_ = f.SetCellValue(sheet, cellB, entry[1])
		row++
	}

	if len(totals.StaffLoans) > 0 {
		row++
		cellA, _ := excelize.CoordinatesToCellName(1, row)
		_ = f.SetCellValue(sheet, cellA, "Staff Loans")
		row++
		for _, name := range sortedLoanNames(totals.StaffLoans) {
			cellA, _ := excelize.CoordinatesToCellName(1, row)
			cellB, _ := excelize.CoordinatesToCellName(2, row)
			_ = f.SetCellValue(sheet, cellA, name)
			_ = f.SetCellValue(sheet, cellB, toFloat(totals.StaffLoans[name]))
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("closing_report_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// ExportPDF renders the closing report as a PDF
func (s *ExportService) ExportPDF(ctx context.Context, report *models.ClosingReport) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Daily Closing Report")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 10, report.From.Format("2006-01-02")+" to "+report.To.Format("2006-01-02"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 9)
	cols := []struct {
		width float64
		title string
	}{
		{22, "Date"}, {22, "Floor"}, {22, "PT"}, {20, "Cash"},
		{20, "Visa"}, {22, "Instapay"}, {20, "Wallet"}, {22, "Expenses"},
	}
	for _, col := range cols {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, day := range report.Days {
		values := []string{
			day.Date,
			day.FloorRevenue.StringFixed(2),
			day.PTRevenue.StringFixed(2),
			day.Methods.Cash.StringFixed(2),
			day.Methods.Visa.StringFixed(2),
			day.Methods.Instapay.StringFixed(2),
			day.Methods.Wallet.StringFixed(2),
			day.ExpenseTotal.StringFixed(2),
		}
		for i, v := range values {
			pdf.CellFormat(cols[i].width, 6, v, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	totals := report.Totals
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Totals")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 8, "Total Revenue:")
	pdf.Cell(40, 8, totals.TotalRevenue.StringFixed(2))
	pdf.Ln(6)
	pdf.Cell(60, 8, "Total Expenses:")
	pdf.Cell(40, 8, totals.TotalExpenses.StringFixed(2))
	pdf.Ln(6)
	pdf.Cell(60, 8, "Net Profit:")
	pdf.Cell(40, 8, totals.NetProfit.StringFixed(2))
	pdf.Ln(10)

	if len(totals.StaffLoans) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(40, 10, "Staff Loans")
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 10)
		for _, name := range sortedLoanNames(totals.StaffLoans) {
			pdf.Cell(60, 8, name+":")
			pdf.Cell(40, 8, totals.StaffLoans[name].StringFixed(2))
			pdf.Ln(6)
		}
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("closing_report_%s.pdf", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func sortedLoanNames(loans map[string]decimal.Decimal) []string {
	names := make([]string, 0, len(loans))
	for name := range loans {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
