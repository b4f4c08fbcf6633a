package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Staff represents a gym employee (coach, receptionist, cleaner...)
type Staff struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:120;not null" json:"name"`
	Role      string          `gorm:"size:50" json:"role"`
	Phone     string          `gorm:"size:30" json:"phone"`
	Salary    decimal.Decimal `gorm:"type:decimal(10,2)" json:"salary"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName specifies the table name for Staff
func (Staff) TableName() string {
	return "staff"
}

// StaffResponse is the JSON response format for staff
type StaffResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	Phone     string          `json:"phone"`
	Salary    decimal.Decimal `json:"salary"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToResponse converts Staff to StaffResponse
func (s *Staff) ToResponse() StaffResponse {
	return StaffResponse{
		ID:        s.ID,
		Name:      s.Name,
		Role:      s.Role,
		Phone:     s.Phone,
		Salary:    s.Salary,
		CreatedAt: s.CreatedAt,
	}
}
