package usecases

import (
	"context"
	"net/mail"
	"time"

	"github.com/nexorbs/nexportal/internal/domain/access"
	"github.com/nexorbs/nexportal/internal/domain/audit"
	"github.com/nexorbs/nexportal/internal/domain/user"
	"github.com/nexorbs/nexportal/internal/shared/authorization"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

const minPasswordLength = 8

// PasswordHasher is the subset of credential hashing the user context needs.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// UpdateUserCommand is a sparse patch: nil pointers leave the field untouched.
type UpdateUserCommand struct {
	Actor       access.Actor
	UserID      string
	DisplayName *string
	Email       *string
	Password    *string
	Role        *string
	IsActive    *bool
	CompanyName *string
	Phone       *string
}

type UpdateUserResult struct {
	User UserSummary
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	audit    audit.Sink
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	auditSink audit.Sink,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		audit:    auditSink,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UpdateUserResult, error) {
	if err := access.CanManageUsers(cmd.Actor); err != nil {
		return nil, err
	}
	if cmd.UserID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	changes, err := uc.buildChanges(ctx, existing, cmd)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return nil, errors.NewValidationError("no fields to update")
	}

	if err := uc.userRepo.UpdateFields(ctx, cmd.UserID, changes); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	updated, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	rec := audit.Record{
		EntityType: audit.EntityUser,
		EntityID:   cmd.UserID,
		Action:     audit.ActionUpdate,
		ActorID:    cmd.Actor.ID,
		OldValues:  userAuditSnapshot(existing),
		NewValues:  userAuditSnapshot(updated),
		CreatedAt:  time.Now(),
	}
	if err := uc.audit.Record(ctx, rec); err != nil {
		uc.logger.Warnw("failed to write audit record", "error", err, "entity_id", cmd.UserID)
	}

	uc.logger.Infow("user updated", "user_id", cmd.UserID, "fields", len(changes))

	return &UpdateUserResult{User: newUserSummary(updated)}, nil
}

func (uc *UpdateUserUseCase) buildChanges(ctx context.Context, existing *user.User, cmd UpdateUserCommand) (user.Changes, error) {
	changes := user.Changes{}

	if cmd.DisplayName != nil {
		if *cmd.DisplayName == "" {
			return nil, errors.NewValidationError("display name cannot be empty")
		}
		changes[user.FieldDisplayName] = *cmd.DisplayName
	}

	if cmd.Email != nil && *cmd.Email != existing.Email() {
		if _, err := mail.ParseAddress(*cmd.Email); err != nil {
			return nil, errors.NewValidationError("invalid email address")
		}
		other, err := uc.userRepo.GetByEmail(ctx, *cmd.Email)
		if err != nil && !errors.IsNotFoundError(err) {
			return nil, err
		}
		if other != nil && other.ID() != existing.ID() {
			return nil, errors.NewConflictError("email is already registered")
		}
		changes[user.FieldEmail] = *cmd.Email
	}

	if cmd.Password != nil {
		if len(*cmd.Password) < minPasswordLength {
			return nil, errors.NewValidationError("password must be at least 8 characters")
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to process password")
		}
		changes[user.FieldPasswordHash] = hash
	}

	if cmd.Role != nil {
		role, ok := authorization.ParseRole(*cmd.Role)
		if !ok {
			return nil, errors.NewValidationError("invalid role")
		}
		changes[user.FieldRole] = role.String()
	}

	if cmd.IsActive != nil {
		changes[user.FieldIsActive] = *cmd.IsActive
	}
	if cmd.CompanyName != nil {
		changes[user.FieldCompanyName] = *cmd.CompanyName
	}
	if cmd.Phone != nil {
		changes[user.FieldPhone] = *cmd.Phone
	}

	return changes, nil
}

func userAuditSnapshot(u *user.User) map[string]any {
	return map[string]any{
		"display_name": u.DisplayName(),
		"email":        u.Email(),
		"role":         u.Role().String(),
		"is_active":    u.IsActive(),
	}
}
