package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexorbs/nexportal/internal/domain/audit"
	"github.com/nexorbs/nexportal/internal/domain/project"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

func strPtr(s string) *string { return &s }

func TestUpdateProject_SparsePatch(t *testing.T) {
	p := makeProject(t, "ffff000000000001", "cccc000000000001")

	var gotChanges project.Changes
	repo := &mockProjectRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*project.Project, error) {
			return p, nil
		},
		UpdateFieldsFunc: func(ctx context.Context, id string, changes project.Changes) error {
			gotChanges = changes
			return nil
		},
	}
	sink := &mockAuditSink{}

	uc := NewUpdateProjectUseCase(repo, &mockUserRepository{}, sink, logger.NewLogger())
	_, err := uc.Execute(context.Background(), UpdateProjectCommand{
		Actor:     adminActor(),
		ProjectID: p.ID(),
		Name:      strPtr("Renamed"),
		Status:    strPtr("on_hold"),
	})

	require.NoError(t, err)
	assert.Len(t, gotChanges, 2)
	assert.Equal(t, "Renamed", gotChanges[project.FieldName])
	assert.Equal(t, "on_hold", gotChanges[project.FieldStatus])

	require.Len(t, sink.Records, 1)
	assert.Equal(t, audit.ActionUpdate, sink.Records[0].Action)
	assert.NotNil(t, sink.Records[0].OldValues)
}

func TestUpdateProject_EmptyPatchRejected(t *testing.T) {
	p := makeProject(t, "ffff000000000001", "cccc000000000001")
	repo := &mockProjectRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*project.Project, error) {
			return p, nil
		},
	}

	uc := NewUpdateProjectUseCase(repo, &mockUserRepository{}, &mockAuditSink{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), UpdateProjectCommand{
		Actor:     adminActor(),
		ProjectID: p.ID(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateProject_InvalidStatus(t *testing.T) {
	p := makeProject(t, "ffff000000000001", "cccc000000000001")
	repo := &mockProjectRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*project.Project, error) {
			return p, nil
		},
	}

	uc := NewUpdateProjectUseCase(repo, &mockUserRepository{}, &mockAuditSink{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), UpdateProjectCommand{
		Actor:     adminActor(),
		ProjectID: p.ID(),
		Status:    strPtr("paused"),
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateProject_NonAdminDenied(t *testing.T) {
	uc := NewUpdateProjectUseCase(&mockProjectRepository{}, &mockUserRepository{}, &mockAuditSink{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdateProjectCommand{
		Actor:     clientActor(),
		ProjectID: "ffff000000000001",
		Name:      strPtr("Mine now"),
	})

	require.Error(t, err)
	assert.True(t, errors.IsAuthorizationError(err))
}

func TestUpdateProject_NotFound(t *testing.T) {
	repo := &mockProjectRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*project.Project, error) {
			return nil, errors.NewNotFoundError("project not found")
		},
	}

	uc := NewUpdateProjectUseCase(repo, &mockUserRepository{}, &mockAuditSink{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), UpdateProjectCommand{
		Actor:     adminActor(),
		ProjectID: "ffffffffffffffff",
		Name:      strPtr("X"),
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteProject_Success(t *testing.T) {
	p := makeProject(t, "ffff000000000001", "cccc000000000001")

	deleted := false
	repo := &mockProjectRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*project.Project, error) {
			return p, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	sink := &mockAuditSink{}

	uc := NewDeleteProjectUseCase(repo, sink, logger.NewLogger())
	err := uc.Execute(context.Background(), DeleteProjectCommand{
		Actor:     adminActor(),
		ProjectID: p.ID(),
	})

	require.NoError(t, err)
	assert.True(t, deleted)
	require.Len(t, sink.Records, 1)
	assert.Equal(t, audit.ActionDelete, sink.Records[0].Action)
	assert.NotNil(t, sink.Records[0].OldValues)
	assert.Nil(t, sink.Records[0].NewValues)
}

func TestDeleteProject_NonAdminDenied(t *testing.T) {
	uc := NewDeleteProjectUseCase(&mockProjectRepository{}, &mockAuditSink{}, logger.NewLogger())

	err := uc.Execute(context.Background(), DeleteProjectCommand{
		Actor:     developerActor(),
		ProjectID: "ffff000000000001",
	})

	require.Error(t, err)
	assert.True(t, errors.IsAuthorizationError(err))
}
