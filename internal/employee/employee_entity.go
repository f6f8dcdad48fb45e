package employee

import (
	"time"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// ParseStatus matches the enum name exactly; "active" is not ACTIVE.
func ParseStatus(v string) (Status, bool) {
	switch Status(v) {
	case StatusActive, StatusInactive:
		return Status(v), true
	default:
		return "", false
	}
}

type Employee struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName     string     `gorm:"size:100;not null" json:"firstName" validate:"required"`
	LastName      string     `gorm:"size:100;not null" json:"lastName" validate:"required"`
	Email         string     `gorm:"size:255;not null;uniqueIndex:uq_employee_email" json:"email" validate:"required,email"`
	Salary        float64    `gorm:"not null;default:0" json:"salary" validate:"gte=0"`
	Department    string     `gorm:"size:100;not null;index" json:"department" validate:"required"`
	Role          string     `gorm:"size:100;not null" json:"role" validate:"required"`
	DateOfJoining *time.Time `gorm:"type:date" json:"dateOfJoining" validate:"omitempty,notfuture"`
	DateOfBirth   *time.Time `gorm:"type:date" json:"dateOfBirth"`
	Status        Status     `gorm:"size:16;not null;default:ACTIVE;index" json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
	CreatedAt     time.Time  `json:"-"`
	UpdatedAt     time.Time  `json:"-"`
}

func (Employee) TableName() string {
	return "employee"
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
