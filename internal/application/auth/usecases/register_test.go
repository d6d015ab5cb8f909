package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexorbs/nexportal/internal/domain/access"
	"github.com/nexorbs/nexportal/internal/domain/audit"
	"github.com/nexorbs/nexportal/internal/domain/user"
	"github.com/nexorbs/nexportal/internal/shared/authorization"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

func adminActor() access.Actor {
	return access.Actor{ID: "0000000000000001", Role: authorization.RoleAdmin}
}

func validRegisterCommand() RegisterUserCommand {
	return RegisterUserCommand{
		Actor:       adminActor(),
		DisplayName: "Grace Hopper",
		Email:       "grace@example.com",
		Password:    "s3cret-pass",
		Role:        "developer",
	}
}

func TestRegisterUser_Success(t *testing.T) {
	var saved *user.User
	repo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
		SaveFunc: func(ctx context.Context, u *user.User) error {
			saved = u
			return nil
		},
	}
	sink := &mockAuditSink{}

	uc := NewRegisterUserUseCase(repo, &mockPasswordHasher{}, sink, logger.NewLogger())
	result, err := uc.Execute(context.Background(), validRegisterCommand())

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Len(t, saved.ID(), 16)
	assert.True(t, strings.HasPrefix(saved.AccountCode(), "dev-"))
	assert.Equal(t, "hashed:s3cret-pass", saved.PasswordHash())
	assert.True(t, saved.IsActive())

	assert.Equal(t, saved.ID(), result.User.ID)
	assert.Equal(t, "developer", result.User.Role)

	require.Len(t, sink.Records, 1)
	assert.Equal(t, audit.EntityUser, sink.Records[0].EntityType)
	assert.Equal(t, audit.ActionCreate, sink.Records[0].Action)
	assert.Equal(t, adminActor().ID, sink.Records[0].ActorID)
}

func TestRegisterUser_NonAdminDenied(t *testing.T) {
	uc := NewRegisterUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockAuditSink{}, logger.NewLogger())

	cmd := validRegisterCommand()
	cmd.Actor = access.Actor{ID: "cccc000000000001", Role: authorization.RoleClient}

	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsAuthorizationError(err))
}

func TestRegisterUser_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterUserCommand)
	}{
		{"missing display name", func(c *RegisterUserCommand) { c.DisplayName = "" }},
		{"bad email", func(c *RegisterUserCommand) { c.Email = "not-an-email" }},
		{"short password", func(c *RegisterUserCommand) { c.Password = "short" }},
		{"unknown role", func(c *RegisterUserCommand) { c.Role = "superuser" }},
	}

	uc := NewRegisterUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockAuditSink{}, logger.NewLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validRegisterCommand()
			tt.mutate(&cmd)
			_, err := uc.Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	existing := testUser(t, authorization.RoleClient)
	repo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return existing, nil
		},
	}

	uc := NewRegisterUserUseCase(repo, &mockPasswordHasher{}, &mockAuditSink{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), validRegisterCommand())

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterUser_AuditFailureIsNotFatal(t *testing.T) {
	repo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}
	sink := &mockAuditSink{
		RecordFunc: func(ctx context.Context, rec audit.Record) error {
			return errors.NewInternalError("audit store down")
		},
	}

	uc := NewRegisterUserUseCase(repo, &mockPasswordHasher{}, sink, logger.NewLogger())
	result, err := uc.Execute(context.Background(), validRegisterCommand())

	require.NoError(t, err)
	assert.NotEmpty(t, result.User.ID)
}
