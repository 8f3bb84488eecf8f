package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:uq_user_email"`
	PasswordHash string    `gorm:"size:255;not null"`
	FullName     string    `gorm:"size:255;not null"`
	Role         string    `gorm:"size:32;not null;default:'viewer'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }
