package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive     = "ACTIVE"
	StatusInactive   = "INACTIVE"
	StatusTerminated = "TERMINATED"
	StatusOnLeave    = "ON_LEAVE"
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code         string    `gorm:"size:20;not null;uniqueIndex:uq_employee_code"`
	Number       string    `gorm:"size:20;not null;uniqueIndex:uq_employee_number"`
	FirstName    string    `gorm:"size:100;not null"`
	LastName     string    `gorm:"size:100;not null"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:uq_employee_email"`
	Phone        string    `gorm:"size:30"`
	Address      string    `gorm:"size:500"`
	Position     string    `gorm:"size:100"`
	DateOfBirth  time.Time `gorm:"type:date;not null"`
	HireDate     time.Time `gorm:"type:date;not null"`
	BaseSalary   int64     `gorm:"type:bigint;not null"` // minor units
	Status       string    `gorm:"size:20;not null;default:'ACTIVE';index"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Employee) TableName() string { return "employees" }
