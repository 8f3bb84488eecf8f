package department

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100;not null;uniqueIndex:uq_department_name"`
	Code        string    `gorm:"size:20;not null;uniqueIndex:uq_department_code"`
	Description string    `gorm:"size:500"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Department) TableName() string { return "departments" }
