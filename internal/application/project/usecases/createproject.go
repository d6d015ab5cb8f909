package usecases

import (
	"context"
	"time"

	"github.com/nexorbs/nexportal/internal/domain/access"
	"github.com/nexorbs/nexportal/internal/domain/audit"
	"github.com/nexorbs/nexportal/internal/domain/project"
	vo "github.com/nexorbs/nexportal/internal/domain/project/valueobjects"
	"github.com/nexorbs/nexportal/internal/domain/sequence"
	"github.com/nexorbs/nexportal/internal/domain/user"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/id"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

type CreateProjectCommand struct {
	Actor             access.Actor
	ClientID          string
	Name              string
	Description       *string
	ProjectType       string
	EstimatedBudget   *float64
	EstimatedDuration *int
	StartDate         *time.Time
	Deadline          *time.Time
}

// ProjectDetails is the project projection returned by all project
// operations.
type ProjectDetails struct {
	ID                string
	Code              string
	ClientID          string
	Name              string
	Description       *string
	ProjectType       string
	Status            string
	EstimatedBudget   *float64
	EstimatedDuration *int
	StartDate         *time.Time
	Deadline          *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type CreateProjectResult struct {
	Project ProjectDetails
}

type CreateProjectUseCase struct {
	projectRepo project.Repository
	userRepo    user.Repository
	sequences   sequence.Allocator
	audit       audit.Sink
	logger      logger.Interface
}

func NewCreateProjectUseCase(
	projectRepo project.Repository,
	userRepo user.Repository,
	sequences sequence.Allocator,
	auditSink audit.Sink,
	logger logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		sequences:   sequences,
		audit:       auditSink,
		logger:      logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*CreateProjectResult, error) {
	if err := access.CanMutateProject(cmd.Actor); err != nil {
		return nil, err
	}

	if cmd.Name == "" {
		return nil, errors.NewValidationError("name is required")
	}
	projectType := vo.ProjectType(cmd.ProjectType)
	if !projectType.IsValid() {
		return nil, errors.NewValidationError("invalid project type")
	}

	client, err := uc.userRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("client not found")
		}
		return nil, err
	}
	if !client.IsActiveClient() {
		return nil, errors.NewNotFoundError("client not found or not an active client")
	}

	year := time.Now().Year()
	counter, err := uc.sequences.Next(ctx, sequence.TypeProject, year)
	if err != nil {
		uc.logger.Errorw("failed to allocate project sequence", "error", err, "year", year)
		return nil, errors.NewInternalError("failed to allocate project code")
	}
	code := sequence.FormatProjectCode(projectType.CodePrefix(), year, counter)

	projectID, err := id.NewEntityID()
	if err != nil {
		uc.logger.Errorw("failed to generate project ID", "error", err)
		return nil, errors.NewInternalError("failed to generate project ID")
	}

	newProject, err := project.NewProject(
		projectID,
		code,
		cmd.ClientID,
		cmd.Name,
		cmd.Description,
		projectType,
		cmd.EstimatedBudget,
		cmd.EstimatedDuration,
		cmd.StartDate,
		cmd.Deadline,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		uc.logger.Errorw("failed to save project", "error", err, "code", code)
		return nil, err
	}

	rec := audit.Record{
		EntityType: audit.EntityProject,
		EntityID:   newProject.ID(),
		Action:     audit.ActionCreate,
		ActorID:    cmd.Actor.ID,
		NewValues:  projectSnapshot(newProject),
		CreatedAt:  time.Now(),
	}
	if err := uc.audit.Record(ctx, rec); err != nil {
		uc.logger.Warnw("failed to write audit record", "error", err, "entity_id", newProject.ID())
	}

	uc.logger.Infow("project created", "project_id", newProject.ID(), "code", code, "client_id", cmd.ClientID)

	return &CreateProjectResult{Project: newProjectDetails(newProject)}, nil
}

func newProjectDetails(p *project.Project) ProjectDetails {
	return ProjectDetails{
		ID:                p.ID(),
		Code:              p.Code(),
		ClientID:          p.ClientID(),
		Name:              p.Name(),
		Description:       p.Description(),
		ProjectType:       p.Type().String(),
		Status:            p.Status().String(),
		EstimatedBudget:   p.EstimatedBudget(),
		EstimatedDuration: p.EstimatedDuration(),
		StartDate:         p.StartDate(),
		Deadline:          p.Deadline(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

func projectSnapshot(p *project.Project) map[string]any {
	return map[string]any{
		"code":      p.Code(),
		"client_id": p.ClientID(),
		"name":      p.Name(),
		"type":      p.Type().String(),
		"status":    p.Status().String(),
	}
}
