package repository

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/nexorbs/nexportal/internal/domain/audit"
	"github.com/nexorbs/nexportal/internal/infrastructure/persistence/models"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

// AuditRepository is the gorm-backed audit sink. Writes happen after the
// entity mutation, outside its transaction; a failure here is the caller's
// to log, never to roll back.
type AuditRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAuditRepository(gormDB *gorm.DB, logger logger.Interface) *AuditRepository {
	return &AuditRepository{db: gormDB, logger: logger}
}

func (r *AuditRepository) Record(ctx context.Context, rec audit.Record) error {
	model := models.AuditLogModel{
		EntityType: string(rec.EntityType),
		EntityID:   rec.EntityID,
		Action:     string(rec.Action),
		ActorID:    rec.ActorID,
		CreatedAt:  rec.CreatedAt,
	}

	if rec.OldValues != nil {
		encoded, err := json.Marshal(rec.OldValues)
		if err != nil {
			return errors.NewInternalError("failed to encode audit old values")
		}
		s := string(encoded)
		model.OldValues = &s
	}
	if rec.NewValues != nil {
		encoded, err := json.Marshal(rec.NewValues)
		if err != nil {
			return errors.NewInternalError("failed to encode audit new values")
		}
		s := string(encoded)
		model.NewValues = &s
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.logger.Errorw("failed to insert audit record", "error", err, "entity_id", rec.EntityID)
		return errors.NewInternalError("failed to write audit record")
	}
	return nil
}
