package model

import (
	"time"

	"github.com/google/uuid"
)

// Staff stores employees with role-based duties.
// Staff are never hard-deleted: deactivation flips IsActive.
type Staff struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID string    `gorm:"uniqueIndex;not null;size:50"`
	FirstName  string    `gorm:"not null;size:100"`
	LastName   string    `gorm:"not null;size:100"`
	Email      *string   `gorm:"uniqueIndex"`
	Phone      *string   `gorm:"size:20"`
	Role       StaffRole `gorm:"type:varchar(50);not null;default:'CASHIER'"`
	HireDate   time.Time `gorm:"type:date;not null"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName keeps the table singular; "staffs" is not a word.
func (Staff) TableName() string { return "staff" }

// FullName is "FirstName LastName", the display form used in reports.
func (s *Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}
