package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents money going out: a gym expense or a staff loan.
// Expenses feed the daily closing report as read-only inputs.
type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Type        string          `gorm:"size:20;not null;index" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description string          `gorm:"size:255" json:"description"`
	StaffID     *uint           `gorm:"index" json:"staff_id,omitempty"`
	IsPaid      bool            `gorm:"default:false" json:"is_paid"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Associations
	Staff *Staff `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

// TableName specifies the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}

// Expense type constants
const (
	ExpenseTypeGym       = "gym_expense"
	ExpenseTypeStaffLoan = "staff_loan"
)

// ValidExpenseType returns true if t is a recognized expense type
func ValidExpenseType(t string) bool {
	return t == ExpenseTypeGym || t == ExpenseTypeStaffLoan
}

// StaffName returns the linked staff member's name, empty if none
func (e *Expense) StaffName() string {
	if e.Staff != nil && e.Staff.ID != 0 {
		return e.Staff.Name
	}
	return ""
}

// ExpenseResponse is the JSON response format for expenses
type ExpenseResponse struct {
	ID          uint            `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	StaffID     *uint           `json:"staff_id,omitempty"`
	StaffName   string          `json:"staff_name,omitempty"`
	IsPaid      bool            `json:"is_paid"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToResponse converts Expense to ExpenseResponse
func (e *Expense) ToResponse() ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Type:        e.Type,
		Amount:      e.Amount,
		Description: e.Description,
		StaffID:     e.StaffID,
		StaffName:   e.StaffName(),
		IsPaid:      e.IsPaid,
		CreatedAt:   e.CreatedAt,
	}
}
