package models

import "time"

type UserModel struct {
	ID           string  `gorm:"primaryKey;size:16"`
	AccountCode  string  `gorm:"uniqueIndex;size:32;not null"`
	DisplayName  string  `gorm:"size:100;not null"`
	Email        string  `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string  `gorm:"size:255;not null"`
	Role         string  `gorm:"size:20;not null;index"`
	IsActive     bool    `gorm:"not null;default:true;index"`
	CompanyName  *string `gorm:"size:255"`
	Phone        *string `gorm:"size:50"`
	LastLogin    *time.Time
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`

	// No foreign key constraints; relationships are enforced by the
	// application layer.
}

func (UserModel) TableName() string {
	return "users"
}
