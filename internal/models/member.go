package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Member represents a gym member with an active subscription window
type Member struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	MemberNumber      int64           `gorm:"uniqueIndex;not null" json:"member_number"`
	Name              string          `gorm:"size:120;not null" json:"name"`
	Phone             string          `gorm:"size:30;index" json:"phone"`
	SubscriptionStart time.Time       `gorm:"type:date;not null" json:"subscription_start"`
	SubscriptionEnd   time.Time       `gorm:"type:date;not null;index" json:"subscription_end"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Paid              decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"paid"`
	Status            string          `gorm:"size:20;default:active;not null;index" json:"status"`
	PhotoPath         *string         `json:"-"`
	Notes             *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TableName specifies the table name for Member
func (Member) TableName() string {
	return "members"
}

// Membership status constants
const (
	MemberStatusActive    = "active"
	MemberStatusFrozen    = "frozen"
	MemberStatusExpired   = "expired"
	MemberStatusCancelled = "cancelled"
)

// Remaining returns the unpaid balance on the subscription
func (m *Member) Remaining() decimal.Decimal {
	return m.Price.Sub(m.Paid)
}

// MayFreeze returns true if the membership can be frozen
func (m *Member) MayFreeze() bool {
	return m.Status == MemberStatusActive
}

// MayUnfreeze returns true if the membership can resume
func (m *Member) MayUnfreeze() bool {
	return m.Status == MemberStatusFrozen
}

// MayRenew returns true if the membership can be renewed
func (m *Member) MayRenew() bool {
	return m.Status != MemberStatusCancelled
}

// MayCancel returns true if the membership can be cancelled
func (m *Member) MayCancel() bool {
	return m.Status != MemberStatusCancelled
}

// IsLapsed returns true if the subscription window has passed
func (m *Member) IsLapsed(now time.Time) bool {
	return now.After(m.SubscriptionEnd.AddDate(0, 0, 1))
}

// MemberResponse is the JSON response format for members
type MemberResponse struct {
	ID                uint            `json:"id"`
	MemberNumber      int64           `json:"member_number"`
	Name              string          `json:"name"`
	Phone             string          `json:"phone"`
	SubscriptionStart time.Time       `json:"subscription_start"`
	SubscriptionEnd   time.Time       `json:"subscription_end"`
	Price             decimal.Decimal `json:"price"`
	Paid              decimal.Decimal `json:"paid"`
	Remaining         decimal.Decimal `json:"remaining"`
	Status            string          `json:"status"`
	HasPhoto          bool            `json:"has_photo"`
	Notes             *string         `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ToResponse converts Member to MemberResponse
func (m *Member) ToResponse() MemberResponse {
	return MemberResponse{
		ID:                m.ID,
		MemberNumber:      m.MemberNumber,
		Name:              m.Name,
		Phone:             m.Phone,
		SubscriptionStart: m.SubscriptionStart,
		SubscriptionEnd:   m.SubscriptionEnd,
		Price:             m.Price,
		Paid:              m.Paid,
		Remaining:         m.Remaining(),
		Status:            m.Status,
		HasPhoto:          m.PhotoPath != nil && *m.PhotoPath != "",
		Notes:             m.Notes,
		CreatedAt:         m.CreatedAt,
	}
}
