package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexorbs/nexportal/internal/domain/access"
	"github.com/nexorbs/nexportal/internal/domain/audit"
	"github.com/nexorbs/nexportal/internal/domain/project"
	vo "github.com/nexorbs/nexportal/internal/domain/project/valueobjects"
	"github.com/nexorbs/nexportal/internal/domain/user"
	"github.com/nexorbs/nexportal/internal/shared/authorization"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

func adminActor() access.Actor {
	return access.Actor{ID: "0000000000000001", Role: authorization.RoleAdmin}
}

func clientActor() access.Actor {
	return access.Actor{ID: "cccc000000000001", Role: authorization.RoleClient}
}

func developerActor() access.Actor {
	return access.Actor{ID: "dddd000000000001", Role: authorization.RoleDeveloper}
}

func activeClient(t *testing.T, id string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(
		id, "user-00000001", "Client Co", "client@example.com", "$2a$10$hash",
		authorization.RoleClient, true, nil, nil, nil, time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return u
}

func makeProject(t *testing.T, id, clientID string) *project.Project {
	t.Helper()
	p, err := project.ReconstructProject(
		id, "NX-WEB-2026-001", clientID, "Site relaunch", nil,
		vo.TypeWeb, vo.StatusActive, nil, nil, nil, nil, time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return p
}

func TestCreateProject_Success(t *testing.T) {
	clientID := "cccc000000000001"

	var saved *project.Project
	projectRepo := &mockProjectRepository{
		SaveFunc: func(ctx context.Context, p *project.Project) error {
			saved = p
			return nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
			return activeClient(t, clientID), nil
		},
	}
	sequences := &mockSequenceAllocator{
		NextFunc: func(ctx context.Context, seqType string, year int) (int, error) {
			assert.Equal(t, "project", seqType)
			return 7, nil
		},
	}
	sink := &mockAuditSink{}

	uc := NewCreateProjectUseCase(projectRepo, userRepo, sequences, sink, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateProjectCommand{
		Actor:       adminActor(),
		ClientID:    clientID,
		Name:        "Site relaunch",
		ProjectType: "Desarrollo Web",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)

	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("NX-WEB-%d-007", year), saved.Code())
	assert.Equal(t, "active", result.Project.Status)
	assert.Len(t, result.Project.ID, 16)

	require.Len(t, sink.Records, 1)
	assert.Equal(t, audit.EntityProject, sink.Records[0].EntityType)
	assert.Equal(t, audit.ActionCreate, sink.Records[0].Action)
}

func TestCreateProject_NonAdminDenied(t *testing.T) {
	uc := NewCreateProjectUseCase(&mockProjectRepository{}, &mockUserRepository{}, &mockSequenceAllocator{}, &mockAuditSink{}, logger.NewLogger())

	for _, actor := range []access.Actor{clientActor(), developerActor()} {
		_, err := uc.Execute(context.Background(), CreateProjectCommand{
			Actor:       actor,
			ClientID:    actor.ID,
			Name:        "X",
			ProjectType: "Desarrollo Web",
		})
		require.Error(t, err)
		assert.True(t, errors.IsAuthorizationError(err))
	}
}

func TestCreateProject_InvalidType(t *testing.T) {
	uc := NewCreateProjectUseCase(&mockProjectRepository{}, &mockUserRepository{}, &mockSequenceAllocator{}, &mockAuditSink{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateProjectCommand{
		Actor:       adminActor(),
		ClientID:    "cccc000000000001",
		Name:        "X",
		ProjectType: "web",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateProject_InactiveClientRejected(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
			u, err := user.ReconstructUser(
				id, "user-00000001", "Gone Co", "gone@example.com", "$2a$10$hash",
				authorization.RoleClient, false, nil, nil, nil, time.Now(), time.Now(),
			)
			require.NoError(t, err)
			return u, nil
		},
	}

	uc := NewCreateProjectUseCase(&mockProjectRepository{}, userRepo, &mockSequenceAllocator{}, &mockAuditSink{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), CreateProjectCommand{
		Actor:       adminActor(),
		ClientID:    "cccc000000000001",
		Name:        "X",
		ProjectType: "Desarrollo Web",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateProject_DeveloperAsOwnerRejected(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
			u, err := user.ReconstructUser(
				id, "dev-00000001", "Dev", "dev@example.com", "$2a$10$hash",
				authorization.RoleDeveloper, true, nil, nil, nil, time.Now(), time.Now(),
			)
			require.NoError(t, err)
			return u, nil
		},
	}

	uc := NewCreateProjectUseCase(&mockProjectRepository{}, userRepo, &mockSequenceAllocator{}, &mockAuditSink{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), CreateProjectCommand{
		Actor:       adminActor(),
		ClientID:    "dddd000000000001",
		Name:        "X",
		ProjectType: "Desarrollo Web",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
