package usecases

import (
	"context"
	"time"

	"github.com/nexorbs/nexportal/internal/domain/access"
	"github.com/nexorbs/nexportal/internal/domain/user"
	"github.com/nexorbs/nexportal/internal/shared/authorization"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
	"github.com/nexorbs/nexportal/internal/shared/utils"
)

type ListUsersCommand struct {
	Actor    access.Actor
	Role     *string
	IsActive *bool
	Page     int
	Limit    int
}

// UserSummary is the projection returned by user listings and updates.
type UserSummary struct {
	ID          string
	AccountCode string
	DisplayName string
	Email       string
	Role        string
	IsActive    bool
	CompanyName *string
	Phone       *string
	LastLogin   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ListUsersResult struct {
	Users      []UserSummary
	Pagination utils.Pagination
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error) {
	if err := access.CanManageUsers(cmd.Actor); err != nil {
		return nil, err
	}

	filter := user.Filter{IsActive: cmd.IsActive}
	if cmd.Role != nil {
		role, ok := authorization.ParseRole(*cmd.Role)
		if !ok {
			return nil, errors.NewValidationError("invalid role filter")
		}
		filter.Role = &role
	}
	filter.Page, filter.Limit = utils.NormalizePage(cmd.Page, cmd.Limit)

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, newUserSummary(u))
	}

	return &ListUsersResult{
		Users:      summaries,
		Pagination: utils.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

func newUserSummary(u *user.User) UserSummary {
	return UserSummary{
		ID:          u.ID(),
		AccountCode: u.AccountCode(),
		DisplayName: u.DisplayName(),
		Email:       u.Email(),
		Role:        u.Role().String(),
		IsActive:    u.IsActive(),
		CompanyName: u.CompanyName(),
		Phone:       u.Phone(),
		LastLogin:   u.LastLogin(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}
