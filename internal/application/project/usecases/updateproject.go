package usecases

import (
	"context"
	"time"

	"github.com/nexorbs/nexportal/internal/domain/access"
	"github.com/nexorbs/nexportal/internal/domain/audit"
	"github.com/nexorbs/nexportal/internal/domain/project"
	vo "github.com/nexorbs/nexportal/internal/domain/project/valueobjects"
	"github.com/nexorbs/nexportal/internal/domain/user"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

// UpdateProjectCommand is a sparse patch: nil pointers leave the field
// untouched. The project code is immutable; it keeps the prefix of the type
// it was created with even if the type changes later.
type UpdateProjectCommand struct {
	Actor             access.Actor
	ProjectID         string
	Name              *string
	Description       *string
	ProjectType       *string
	Status            *string
	ClientID          *string
	EstimatedBudget   *float64
	EstimatedDuration *int
	StartDate         *time.Time
	Deadline          *time.Time
}

type UpdateProjectResult struct {
	Project ProjectDetails
}

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	userRepo    user.Repository
	audit       audit.Sink
	logger      logger.Interface
}

func NewUpdateProjectUseCase(
	projectRepo project.Repository,
	userRepo user.Repository,
	auditSink audit.Sink,
	logger logger.Interface,
) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		audit:       auditSink,
		logger:      logger,
	}
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, cmd UpdateProjectCommand) (*UpdateProjectResult, error) {
	if err := access.CanMutateProject(cmd.Actor); err != nil {
		return nil, err
	}
	if cmd.ProjectID == "" {
		return nil, errors.NewValidationError("project ID is required")
	}

	existing, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}

	changes, err := uc.buildChanges(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return nil, errors.NewValidationError("no fields to update")
	}

	if err := uc.projectRepo.UpdateFields(ctx, cmd.ProjectID, changes); err != nil {
		uc.logger.Errorw("failed to update project", "error", err, "project_id", cmd.ProjectID)
		return nil, err
	}

	updated, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}

	rec := audit.Record{
		EntityType: audit.EntityProject,
		EntityID:   cmd.ProjectID,
		Action:     audit.ActionUpdate,
		ActorID:    cmd.Actor.ID,
		OldValues:  projectSnapshot(existing),
		NewValues:  projectSnapshot(updated),
		CreatedAt:  time.Now(),
	}
	if err := uc.audit.Record(ctx, rec); err != nil {
		uc.logger.Warnw("failed to write audit record", "error", err, "entity_id", cmd.ProjectID)
	}

	uc.logger.Infow("project updated", "project_id", cmd.ProjectID, "fields", len(changes))

	return &UpdateProjectResult{Project: newProjectDetails(updated)}, nil
}

func (uc *UpdateProjectUseCase) buildChanges(ctx context.Context, cmd UpdateProjectCommand) (project.Changes, error) {
	changes := project.Changes{}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, errors.NewValidationError("name cannot be empty")
		}
		changes[project.FieldName] = *cmd.Name
	}
	if cmd.Description != nil {
		changes[project.FieldDescription] = *cmd.Description
	}
	if cmd.ProjectType != nil {
		projectType := vo.ProjectType(*cmd.ProjectType)
		if !projectType.IsValid() {
			return nil, errors.NewValidationError("invalid project type")
		}
		changes[project.FieldType] = projectType.String()
	}
	if cmd.Status != nil {
		status, err := vo.NewProjectStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid project status")
		}
		changes[project.FieldStatus] = status.String()
	}
	if cmd.ClientID != nil {
		client, err := uc.userRepo.GetByID(ctx, *cmd.ClientID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewNotFoundError("client not found")
			}
			return nil, err
		}
		if !client.IsActiveClient() {
			return nil, errors.NewNotFoundError("client not found or not an active client")
		}
		changes[project.FieldClientID] = *cmd.ClientID
	}
	if cmd.EstimatedBudget != nil {
		changes[project.FieldEstimatedBudget] = *cmd.EstimatedBudget
	}
	if cmd.EstimatedDuration != nil {
		changes[project.FieldEstimatedDuration] = *cmd.EstimatedDuration
	}
	if cmd.StartDate != nil {
		changes[project.FieldStartDate] = *cmd.StartDate
	}
	if cmd.Deadline != nil {
		changes[project.FieldDeadline] = *cmd.Deadline
	}

	return changes, nil
}
