package models

import "time"

type ProjectModel struct {
	ID                string  `gorm:"primaryKey;size:16"`
	Code              string  `gorm:"uniqueIndex;size:32;not null"`
	ClientID          string  `gorm:"size:16;not null;index"`
	Name              string  `gorm:"size:200;not null"`
	Description       *string `gorm:"type:text"`
	Type              string  `gorm:"size:50;not null;index"`
	Status            string  `gorm:"size:20;not null;index"`
	EstimatedBudget   *float64
	EstimatedDuration *int
	StartDate         *time.Time
	Deadline          *time.Time
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

func (ProjectModel) TableName() string {
	return "projects"
}
