package usecases

import (
	"context"

	"github.com/nexorbs/nexportal/internal/domain/access"
	"github.com/nexorbs/nexportal/internal/domain/project"
	vo "github.com/nexorbs/nexportal/internal/domain/project/valueobjects"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
	"github.com/nexorbs/nexportal/internal/shared/utils"
)

type ListProjectsCommand struct {
	Actor  access.Actor
	Status *string
	Type   *string
	// ClientID is an explicit filter, honored for admins only; other roles
	// are pinned to their own scope regardless.
	ClientID *string
	Page     int
	Limit    int
}

type ListProjectsResult struct {
	Projects   []ProjectDetails
	Pagination utils.Pagination
}

type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo project.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, cmd ListProjectsCommand) (*ListProjectsResult, error) {
	filter := project.Filter{}

	if cmd.Status != nil {
		status, err := vo.NewProjectStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}
	if cmd.Type != nil {
		projectType := vo.ProjectType(*cmd.Type)
		if !projectType.IsValid() {
			return nil, errors.NewValidationError("invalid type filter")
		}
		filter.Type = &projectType
	}

	scope := access.ProjectListScope(cmd.Actor)
	switch {
	case scope.DenyAll:
		filter.DenyAll = true
	case scope.ClientID != nil:
		filter.ClientID = scope.ClientID
	default:
		filter.ClientID = cmd.ClientID
	}

	filter.Page, filter.Limit = utils.NormalizePage(cmd.Page, cmd.Limit)

	projects, total, err := uc.projectRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err)
		return nil, err
	}

	details := make([]ProjectDetails, 0, len(projects))
	for _, p := range projects {
		details = append(details, newProjectDetails(p))
	}

	return &ListProjectsResult{
		Projects:   details,
		Pagination: utils.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}
