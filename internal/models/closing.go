package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MethodTotals accumulates receipt amounts by payment method
type MethodTotals struct {
	Cash     decimal.Decimal `json:"cash"`
	Visa     decimal.Decimal `json:"visa"`
	Instapay decimal.Decimal `json:"instapay"`
	Wallet   decimal.Decimal `json:"wallet"`
}

// Add accumulates amount under the given (already normalized) method
func (t *MethodTotals) Add(method string, amount decimal.Decimal) {
	switch method {
	case PaymentMethodVisa:
		t.Visa = t.Visa.Add(amount)
	case PaymentMethodInstapay:
		t.Instapay = t.Instapay.Add(amount)
	case PaymentMethodWallet:
		t.Wallet = t.Wallet.Add(amount)
	default:
		t.Cash = t.Cash.Add(amount)
	}
}

// DayClosing is the financial summary for one local calendar day.
// Receipts and Expenses carry the raw matched records for drill-down.
type DayClosing struct {
	Date         string                     `json:"date"` // YYYY-MM-DD in the report timezone
	FloorRevenue decimal.Decimal            `json:"floor_revenue"`
	PTRevenue    decimal.Decimal            `json:"pt_revenue"`
	Methods      MethodTotals               `json:"methods"`
	ExpenseTotal decimal.Decimal            `json:"expense_total"`
	StaffLoans   map[string]decimal.Decimal `json:"staff_loans,omitempty"`
	Receipts     []ReceiptResponse          `json:"receipts"`
	Expenses     []ExpenseResponse          `json:"expenses"`
}

// ClosingTotals is the grand-total record across all day buckets
type ClosingTotals struct {
	FloorRevenue  decimal.Decimal            `json:"floor_revenue"`
	PTRevenue     decimal.Decimal            `json:"pt_revenue"`
	Methods       MethodTotals               `json:"methods"`
	TotalRevenue  decimal.Decimal            `json:"total_revenue"`
	TotalExpenses decimal.Decimal            `json:"total_expenses"`
	NetProfit     decimal.Decimal            `json:"net_profit"`
	StaffLoans    map[string]decimal.Decimal `json:"staff_loans,omitempty"`
}

// ClosingReport is the full daily rollup for a report window
type ClosingReport struct {
	From   time.Time     `json:"from"`
	To     time.Time     `json:"to"`
	Days   []DayClosing  `json:"days"` // sorted date-descending
	Totals ClosingTotals `json:"totals"`
}
