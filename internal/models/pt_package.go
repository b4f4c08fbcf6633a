package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PTPackage represents a personal-training session package sold to a
// member or a walk-in client
type PTPackage struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	MemberID          *uint           `gorm:"index" json:"member_id,omitempty"`
	ClientName        string          `gorm:"size:120;not null" json:"client_name"`
	CoachID           *uint           `gorm:"index" json:"coach_id,omitempty"`
	TotalSessions     int             `gorm:"not null" json:"total_sessions"`
	RemainingSessions int             `gorm:"not null" json:"remaining_sessions"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Paid              decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"paid"`
	CreatedAt         time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	// Associations
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Coach  *Staff  `gorm:"foreignKey:CoachID" json:"coach,omitempty"`
}

// TableName specifies the table name for PTPackage
func (PTPackage) TableName() string {
	return "pt_packages"
}

// HasSessionsLeft returns true if the package still has unused sessions
func (p *PTPackage) HasSessionsLeft() bool {
	return p.RemainingSessions > 0
}

// PTPackageResponse is the JSON response format for PT packages
type PTPackageResponse struct {
	ID                uint            `json:"id"`
	MemberID          *uint           `json:"member_id,omitempty"`
	ClientName        string          `json:"client_name"`
	CoachName         string          `json:"coach_name,omitempty"`
	TotalSessions     int             `json:"total_sessions"`
	RemainingSessions int             `json:"remaining_sessions"`
	Price             decimal.Decimal `json:"price"`
	Paid              decimal.Decimal `json:"paid"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ToResponse converts PTPackage to PTPackageResponse
func (p *PTPackage) ToResponse() PTPackageResponse {
	resp := PTPackageResponse{
		ID:                p.ID,
		MemberID:          p.MemberID,
		ClientName:        p.ClientName,
		TotalSessions:     p.TotalSessions,
		RemainingSessions: p.RemainingSessions,
		Price:             p.Price,
		Paid:              p.Paid,
		CreatedAt:         p.CreatedAt,
	}
	if p.Coach != nil && p.Coach.ID != 0 {
		resp.CoachName = p.Coach.Name
	}
	return resp
}
