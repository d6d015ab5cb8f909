package usecases

import (
	"context"

	"github.com/nexorbs/nexportal/internal/domain/access"
	"github.com/nexorbs/nexportal/internal/domain/project"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

type GetProjectCommand struct {
	Actor     access.Actor
	ProjectID string
}

type GetProjectResult struct {
	Project ProjectDetails
}

type GetProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewGetProjectUseCase(projectRepo project.Repository, logger logger.Interface) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, cmd GetProjectCommand) (*GetProjectResult, error) {
	if cmd.ProjectID == "" {
		return nil, errors.NewValidationError("project ID is required")
	}

	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := access.CanViewProject(cmd.Actor, access.ProjectRef{ClientID: p.ClientID()}); err != nil {
		return nil, err
	}

	return &GetProjectResult{Project: newProjectDetails(p)}, nil
}
