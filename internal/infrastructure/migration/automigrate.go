// Package migration keeps the database schema in step with the persistence
// models via gorm's AutoMigrate.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nexorbs/nexportal/internal/infrastructure/persistence/models"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

// AutoMigrateModels lists every model the schema carries. Order matters only
// for readability; no foreign key constraints exist between tables.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ProjectModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.AuditLogModel{},
		&models.SequenceCounterModel{},
	}
}

// Run applies AutoMigrate for all registered models.
func Run(db *gorm.DB, log logger.Interface) error {
	modelList := AutoMigrateModels()
	log.Infow("starting database migration", "models_count", len(modelList))

	if err := db.AutoMigrate(modelList...); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("auto migrate: %w", err)
	}

	log.Infow("database migration completed")
	return nil
}

// TableStatus reports whether each model's table currently exists, for the
// migrate status command.
type TableStatus struct {
	Table  string
	Exists bool
}

func Status(db *gorm.DB) []TableStatus {
	migrator := db.Migrator()
	modelList := AutoMigrateModels()

	statuses := make([]TableStatus, 0, len(modelList))
	for _, model := range modelList {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			continue
		}
		statuses = append(statuses, TableStatus{
			Table:  stmt.Schema.Table,
			Exists: migrator.HasTable(model),
		})
	}
	return statuses
}
