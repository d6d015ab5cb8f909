package mappers

import (
	"fmt"

	"github.com/nexorbs/nexportal/internal/domain/project"
	vo "github.com/nexorbs/nexportal/internal/domain/project/valueobjects"
	"github.com/nexorbs/nexportal/internal/infrastructure/persistence/models"
)

// ProjectMapper converts between Project domain entities and persistence
// models.
type ProjectMapper interface {
	ToModel(p *project.Project) *models.ProjectModel
	ToDomain(model *models.ProjectModel) (*project.Project, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:                p.ID(),
		Code:              p.Code(),
		ClientID:          p.ClientID(),
		Name:              p.Name(),
		Description:       p.Description(),
		Type:              p.Type().String(),
		Status:            p.Status().String(),
		EstimatedBudget:   p.EstimatedBudget(),
		EstimatedDuration: p.EstimatedDuration(),
		StartDate:         p.StartDate(),
		Deadline:          p.Deadline(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

func (m *ProjectMapperImpl) ToDomain(model *models.ProjectModel) (*project.Project, error) {
	p, err := project.ReconstructProject(
		model.ID,
		model.Code,
		model.ClientID,
		model.Name,
		model.Description,
		vo.ProjectType(model.Type),
		vo.ProjectStatus(model.Status),
		model.EstimatedBudget,
		model.EstimatedDuration,
		model.StartDate,
		model.Deadline,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct project (id=%s): %w", model.ID, err)
	}
	return p, nil
}
