package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexorbs/nexportal/internal/domain/access"
	"github.com/nexorbs/nexportal/internal/domain/user"
	"github.com/nexorbs/nexportal/internal/shared/authorization"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

func adminActor() access.Actor {
	return access.Actor{ID: "0000000000000001", Role: authorization.RoleAdmin}
}

func makeUser(t *testing.T, id, email string, role authorization.Role) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(
		id, "user-00000000", "Someone", email, "$2a$10$hash",
		role, true, nil, nil, nil, time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return u
}

func TestListUsers_AdminSeesAll(t *testing.T) {
	users := []*user.User{
		makeUser(t, "a000000000000001", "a@example.com", authorization.RoleClient),
		makeUser(t, "a000000000000002", "b@example.com", authorization.RoleDeveloper),
	}

	var gotFilter user.Filter
	repo := &mockUserRepository{
		ListFunc: func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
			gotFilter = filter
			return users, 25, nil
		},
	}

	uc := NewListUsersUseCase(repo, logger.NewLogger())
	result, err := uc.Execute(context.Background(), ListUsersCommand{Actor: adminActor()})

	require.NoError(t, err)
	assert.Len(t, result.Users, 2)
	// defaults applied
	assert.Equal(t, 1, gotFilter.Page)
	assert.Equal(t, 10, gotFilter.Limit)
	assert.Equal(t, int64(25), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
}

func TestListUsers_RoleFilter(t *testing.T) {
	var gotFilter user.Filter
	repo := &mockUserRepository{
		ListFunc: func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}

	role := "developer"
	uc := NewListUsersUseCase(repo, logger.NewLogger())
	_, err := uc.Execute(context.Background(), ListUsersCommand{Actor: adminActor(), Role: &role})

	require.NoError(t, err)
	require.NotNil(t, gotFilter.Role)
	assert.Equal(t, authorization.RoleDeveloper, *gotFilter.Role)
}

func TestListUsers_InvalidRoleFilter(t *testing.T) {
	role := "wizard"
	uc := NewListUsersUseCase(&mockUserRepository{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), ListUsersCommand{Actor: adminActor(), Role: &role})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestListUsers_NonAdminDenied(t *testing.T) {
	uc := NewListUsersUseCase(&mockUserRepository{}, logger.NewLogger())

	for _, role := range []authorization.Role{authorization.RoleClient, authorization.RoleDeveloper} {
		_, err := uc.Execute(context.Background(), ListUsersCommand{
			Actor: access.Actor{ID: "x000000000000001", Role: role},
		})
		require.Error(t, err)
		assert.True(t, errors.IsAuthorizationError(err))
	}
}
