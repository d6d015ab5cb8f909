package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nexorbs/nexportal/internal/infrastructure/persistence/models"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

// SequenceRepository implements the sequence allocator over the
// sequence_counters table. Each call runs its own transaction and takes a
// row lock, so concurrent callers for the same (type, year) serialize and
// never observe the same counter value.
type SequenceRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSequenceRepository(gormDB *gorm.DB, logger logger.Interface) *SequenceRepository {
	return &SequenceRepository{db: gormDB, logger: logger}
}

func (r *SequenceRepository) Next(ctx context.Context, seqType string, year int) (int, error) {
	var next int

	allocate := func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var row models.SequenceCounterModel
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("type = ? AND year = ?", seqType, year).
				First(&row).Error

			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				row = models.SequenceCounterModel{Type: seqType, Year: year, Counter: 1}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				next = 1
				return nil
			}
			if err != nil {
				return err
			}

			row.Counter++
			if err := tx.Model(&models.SequenceCounterModel{}).
				Where("type = ? AND year = ?", seqType, year).
				Update("counter", row.Counter).Error; err != nil {
				return err
			}
			next = row.Counter
			return nil
		})
	}

	err := allocate()
	if err != nil && errors.IsDuplicateError(err) {
		// Two callers raced to create the first row for this (type, year);
		// the loser retries against the now-existing row.
		err = allocate()
	}
	if err != nil {
		r.logger.Errorw("failed to allocate sequence", "error", err, "type", seqType, "year", year)
		return 0, errors.NewInternalError("failed to allocate sequence")
	}
	return next, nil
}
