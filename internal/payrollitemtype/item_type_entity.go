package payrollitemtype

import (
	"time"

	"github.com/google/uuid"
)

// PayrollItemType is reference data: seeded at startup, read-only except for
// the active flag.
type PayrollItemType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100;not null"`
	Code        string    `gorm:"size:20;not null;uniqueIndex:uq_item_type_code"`
	Description string    `gorm:"size:500"`
	IsEarning   bool      `gorm:"not null;default:false"`
	IsDeduction bool      `gorm:"not null;default:false"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PayrollItemType) TableName() string { return "payroll_item_types" }
