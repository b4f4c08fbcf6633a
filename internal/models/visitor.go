package models

import "time"

// Visitor is a walk-in log entry, used for follow-up calls. Old entries
// are pruned by a scheduled job.
type Visitor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Phone     string    `gorm:"size:30" json:"phone"`
	Note      string    `gorm:"size:255" json:"note"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for Visitor
func (Visitor) TableName() string {
	return "visitors"
}
