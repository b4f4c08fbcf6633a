package services

import (
	"context"
	"sort"
	"time"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/repository"
	"github.com/shopspring/decimal"
)

// ClosingService produces the daily financial closing report. The
// aggregation itself is pure; the service only loads the window and
// carries the report timezone.
type ClosingService struct {
	ledgerRepo  repository.LedgerRepository
	expenseRepo repository.ExpenseRepository
	loc         *time.Location
}

// NewClosingService creates a new closing service. loc is the timezone
// used for calendar-day bucketing.
func NewClosingService(ledgerRepo repository.LedgerRepository, expenseRepo repository.ExpenseRepository, loc *time.Location) *ClosingService {
	if loc == nil {
		loc = time.UTC
	}
	return &ClosingService{
		ledgerRepo:  ledgerRepo,
		expenseRepo: expenseRepo,
		loc:         loc,
	}
}

// Report loads receipts and expenses for the inclusive [from, to] window
// and builds the closing report. Recomputed on every call; there is no
// cached materialized view.
func (s *ClosingService) Report(ctx context.Context, from, to time.Time) (*models.ClosingReport, error) {
	if to.Before(from) {
		return nil, NewValidationError("window", "end must not precede start")
	}

	receipts, err := s.ledgerRepo.FindInWindow(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.FindInWindow(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return BuildClosingReport(receipts, expenses, from, to, s.loc), nil
}

// LastSevenDays returns the window covering the past seven local
// calendar days up to now, inclusive.
func (s *ClosingService) LastSevenDays(now time.Time) (time.Time, time.Time) {
	local := now.In(s.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, -6)
	return start, local
}

// CurrentMonth returns the window from the first of the local calendar
// month up to now, inclusive.
func (s *ClosingService) CurrentMonth(now time.Time) (time.Time, time.Time) {
	local := now.In(s.loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, s.loc)
	return start, local
}

// Location returns the report bucketing timezone
func (s *ClosingService) Location() *time.Location {
	return s.loc
}

// BuildClosingReport buckets receipts and expenses by local calendar day
// and computes per-day and grand totals. Both window bounds are
// inclusive at second granularity; bucketing uses the calendar date in
// loc, so records two minutes apart across local midnight land in
// different buckets. Pure: same inputs, same output, no writes.
func BuildClosingReport(receipts []models.Receipt, expenses []models.Expense, from, to time.Time, loc *time.Location) *models.ClosingReport {
	if loc == nil {
		loc = time.UTC
	}

	days := make(map[string]*models.DayClosing)

	bucket := func(t time.Time) *models.DayClosing {
		date := t.In(loc).Format("2006-01-02")
		day, ok := days[date]
		if !ok {
			day = &models.DayClosing{
				Date:     date,
				Receipts: []models.ReceiptResponse{},
				Expenses: []models.ExpenseResponse{},
			}
			days[date] = day
		}
		return day
	}

	for i := range receipts {
		r := &receipts[i]
		if !inWindow(r.CreatedAt, from, to) {
			continue
		}

		day := bucket(r.CreatedAt)
		day.Receipts = append(day.Receipts, r.ToResponse())

		switch r.Type {
		case models.ReceiptTypeMember:
			day.FloorRevenue = day.FloorRevenue.Add(r.Amount)
		case models.ReceiptTypePT:
			day.PTRevenue = day.PTRevenue.Add(r.Amount)
		}
		day.Methods.Add(models.NormalizePaymentMethod(r.PaymentMethod), r.Amount)
	}

	for i := range expenses {
		e := &expenses[i]
		if !inWindow(e.CreatedAt, from, to) {
			continue
		}

		day := bucket(e.CreatedAt)
		day.Expenses = append(day.Expenses, e.ToResponse())
		day.ExpenseTotal = day.ExpenseTotal.Add(e.Amount)

		if e.Type == models.ExpenseTypeStaffLoan {
			if name := e.StaffName(); name != "" {
				if day.StaffLoans == nil {
					day.StaffLoans = make(map[string]decimal.Decimal)
				}
				day.StaffLoans[name] = day.StaffLoans[name].Add(e.Amount)
			}
		}
	}

	report := &models.ClosingReport{
		From: from,
		To:   to,
		Days: make([]models.DayClosing, 0, len(days)),
	}

	for _, day := range days {
		report.Days = append(report.Days, *day)
	}
	// most recent day first; dates are YYYY-MM-DD so string order is
	// chronological order
	sort.Slice(report.Days, func(i, j int) bool {
		return report.Days[i].Date > report.Days[j].Date
	})

	totals := &report.Totals
	for i := range report.Days {
		day := &report.Days[i]
		totals.FloorRevenue = totals.FloorRevenue.Add(day.FloorRevenue)
		totals.PTRevenue = totals.PTRevenue.Add(day.PTRevenue)
		totals.Methods.Cash = totals.Methods.Cash.Add(day.Methods.Cash)
		totals.Methods.Visa = totals.Methods.Visa.Add(day.Methods.Visa)
		totals.Methods.Instapay = totals.Methods.Instapay.Add(day.Methods.Instapay)
		totals.Methods.Wallet = totals.Methods.Wallet.Add(day.Methods.Wallet)
		totals.TotalExpenses = totals.TotalExpenses.Add(day.ExpenseTotal)
		for name, amount := range day.StaffLoans {
			if totals.StaffLoans == nil {
				totals.StaffLoans = make(map[string]decimal.Decimal)
			}
			totals.StaffLoans[name] = totals.StaffLoans[name].Add(amount)
		}
	}
	totals.TotalRevenue = totals.FloorRevenue.Add(totals.PTRevenue)
	totals.NetProfit = totals.TotalRevenue.Sub(totals.TotalExpenses)

	return report
}

// inWindow checks the inclusive [from, to] bounds
func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
