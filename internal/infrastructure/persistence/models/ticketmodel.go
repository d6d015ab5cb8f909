package models

import "time"

type TicketModel struct {
	ID                  string  `gorm:"primaryKey;size:16"`
	Number              string  `gorm:"uniqueIndex;size:20;not null"`
	ProjectID           string  `gorm:"size:16;not null;index"`
	ClientID            string  `gorm:"size:16;not null;index"`
	AssignedDeveloperID *string `gorm:"size:16;index"`
	Title               string  `gorm:"size:200;not null"`
	Description         *string `gorm:"type:text"`
	Priority            string  `gorm:"size:20;not null;index"`
	Status              string  `gorm:"size:20;not null;index"`
	Category            string  `gorm:"size:50;not null;index"`
	ResolvedAt          *time.Time
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID        string    `gorm:"primaryKey;size:16"`
	TicketID  string    `gorm:"size:16;not null;index"`
	UserID    string    `gorm:"size:16;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}
