package models

import "time"

// AuditLogModel rows are write-once; nothing in the application updates or
// deletes them.
type AuditLogModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	EntityType string    `gorm:"size:20;not null;index:idx_audit_entity"`
	EntityID   string    `gorm:"size:16;not null;index:idx_audit_entity"`
	Action     string    `gorm:"size:20;not null"`
	ActorID    string    `gorm:"size:16;not null;index"`
	OldValues  *string   `gorm:"type:json"`
	NewValues  *string   `gorm:"type:json"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

func (AuditLogModel) TableName() string {
	return "audit_log"
}
