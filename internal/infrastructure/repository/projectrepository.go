package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/nexorbs/nexportal/internal/domain/project"
	"github.com/nexorbs/nexportal/internal/infrastructure/persistence/mappers"
	"github.com/nexorbs/nexportal/internal/infrastructure/persistence/models"
	"github.com/nexorbs/nexportal/internal/shared/db"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
	"github.com/nexorbs/nexportal/internal/shared/utils"
)

var projectColumns = map[project.Field]string{
	project.FieldName:              "name",
	project.FieldDescription:       "description",
	project.FieldType:              "type",
	project.FieldStatus:            "status",
	project.FieldClientID:          "client_id",
	project.FieldEstimatedBudget:   "estimated_budget",
	project.FieldEstimatedDuration: "estimated_duration",
	project.FieldStartDate:         "start_date",
	project.FieldDeadline:          "deadline",
}

type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
	logger logger.Interface
}

func NewProjectRepository(gormDB *gorm.DB, logger logger.Interface) *ProjectRepository {
	return &ProjectRepository{
		db:     gormDB,
		mapper: mappers.NewProjectMapper(),
		logger: logger,
	}
}

func (r *ProjectRepository) Save(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return err
		}
		r.logger.Errorw("failed to insert project", "error", err, "project_id", p.ID())
		return errors.NewInternalError("failed to save project")
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*project.Project, error) {
	var model models.ProjectModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("project not found")
		}
		return nil, errors.NewInternalError("failed to query project")
	}
	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepository) List(ctx context.Context, filter project.Filter) ([]*project.Project, int64, error) {
	// A deny-all scope never reaches the database.
	if filter.DenyAll {
		return []*project.Project{}, 0, nil
	}

	query := db.GetTxFromContext(ctx, r.db).Model(&models.ProjectModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.NewInternalError("failed to count projects")
	}

	var modelList []models.ProjectModel
	err := query.
		Order("created_at DESC").
		Offset(utils.Offset(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, errors.NewInternalError("failed to list projects")
	}

	projects := make([]*project.Project, 0, len(modelList))
	for i := range modelList {
		p, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			r.logger.Errorw("skipping unmappable project row", "error", err, "project_id", modelList[i].ID)
			continue
		}
		projects = append(projects, p)
	}
	return projects, total, nil
}

func (r *ProjectRepository) UpdateFields(ctx context.Context, id string, changes project.Changes) error {
	if len(changes) == 0 {
		return errors.NewValidationError("no fields to update")
	}

	columns := make(map[string]any, len(changes))
	for field, value := range changes {
		column, ok := projectColumns[field]
		if !ok {
			return errors.NewValidationError("unknown project field: " + string(field))
		}
		columns[column] = value
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProjectModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		r.logger.Errorw("failed to update project", "error", result.Error, "project_id", id)
		return errors.NewInternalError("failed to update project")
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("project not found")
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", id).
		Delete(&models.ProjectModel{})
	if result.Error != nil {
		return errors.NewInternalError("failed to delete project")
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("project not found")
	}
	return nil
}
