package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayPass represents a single day-use or InBody visit by a non-member
type DayPass struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Kind          string          `gorm:"size:20;not null;index" json:"kind"`
	Name          string          `gorm:"size:120;not null" json:"name"`
	Phone         string          `gorm:"size:30" json:"phone"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"size:20;not null;default:cash" json:"payment_method"`
	CreatedAt     time.Time       `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for DayPass
func (DayPass) TableName() string {
	return "day_passes"
}

// Day pass kind constants
const (
	DayPassKindDayUse = "day_use"
	DayPassKindInBody = "inbody"
)

// ValidDayPassKind returns true if k is a recognized day pass kind
func ValidDayPassKind(k string) bool {
	return k == DayPassKindDayUse || k == DayPassKindInBody
}

// ReceiptType maps the pass kind to the ledger's receipt type
func (d *DayPass) ReceiptType() string {
	if d.Kind == DayPassKindInBody {
		return ReceiptTypeInBody
	}
	return ReceiptTypeDayUse
}

// DayPassResponse is the JSON response format for day passes
type DayPassResponse struct {
	ID            uint            `json:"id"`
	Kind          string          `json:"kind"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToResponse converts DayPass to DayPassResponse
func (d *DayPass) ToResponse() DayPassResponse {
	return DayPassResponse{
		ID:            d.ID,
		Kind:          d.Kind,
		Name:          d.Name,
		Phone:         d.Phone,
		Amount:        d.Amount,
		PaymentMethod: d.PaymentMethod,
		CreatedAt:     d.CreatedAt,
	}
}
