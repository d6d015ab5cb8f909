package usecases

import (
	"context"
	"time"

	"github.com/nexorbs/nexportal/internal/domain/access"
	"github.com/nexorbs/nexportal/internal/domain/audit"
	"github.com/nexorbs/nexportal/internal/domain/project"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

type DeleteProjectCommand struct {
	Actor     access.Actor
	ProjectID string
}

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	audit       audit.Sink
	logger      logger.Interface
}

func NewDeleteProjectUseCase(
	projectRepo project.Repository,
	auditSink audit.Sink,
	logger logger.Interface,
) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
		audit:       auditSink,
		logger:      logger,
	}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, cmd DeleteProjectCommand) error {
	if err := access.CanMutateProject(cmd.Actor); err != nil {
		return err
	}
	if cmd.ProjectID == "" {
		return errors.NewValidationError("project ID is required")
	}

	existing, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return err
	}

	if err := uc.projectRepo.Delete(ctx, cmd.ProjectID); err != nil {
		uc.logger.Errorw("failed to delete project", "error", err, "project_id", cmd.ProjectID)
		return err
	}

	rec := audit.Record{
		EntityType: audit.EntityProject,
		EntityID:   cmd.ProjectID,
		Action:     audit.ActionDelete,
		ActorID:    cmd.Actor.ID,
		OldValues:  projectSnapshot(existing),
		CreatedAt:  time.Now(),
	}
	if err := uc.audit.Record(ctx, rec); err != nil {
		uc.logger.Warnw("failed to write audit record", "error", err, "entity_id", cmd.ProjectID)
	}

	uc.logger.Infow("project deleted", "project_id", cmd.ProjectID, "code", existing.Code())
	return nil
}
