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
	"github.com/nexorbs/nexportal/internal/shared/id"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

const minPasswordLength = 8

type RegisterUserCommand struct {
	Actor       access.Actor
	DisplayName string
	Email       string
	Password    string
	Role        string
	CompanyName *string
	Phone       *string
}

type RegisterUserResult struct {
	User UserInfo
}

// RegisterUserUseCase creates a new account. Registration is an admin
// operation; there is no self-service signup. Both POST /auth/register and
// POST /users run through it.
type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	audit    audit.Sink
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	auditSink audit.Sink,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		audit:    auditSink,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	if err := access.CanManageUsers(cmd.Actor); err != nil {
		return nil, err
	}

	role, err := uc.validateCommand(cmd)
	if err != nil {
		return nil, err
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email); err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to check email uniqueness", "error", err)
		return nil, err
	} else if existing != nil {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	userID, err := id.NewEntityID()
	if err != nil {
		uc.logger.Errorw("failed to generate user ID", "error", err)
		return nil, errors.NewInternalError("failed to generate user ID")
	}
	accountCode, err := id.NewAccountCode(role.String())
	if err != nil {
		uc.logger.Errorw("failed to generate account code", "error", err)
		return nil, errors.NewInternalError("failed to generate account code")
	}

	newUser, err := user.NewUser(
		userID,
		accountCode,
		cmd.DisplayName,
		cmd.Email,
		hash,
		role,
		cmd.CompanyName,
		cmd.Phone,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	rec := audit.Record{
		EntityType: audit.EntityUser,
		EntityID:   newUser.ID(),
		Action:     audit.ActionCreate,
		ActorID:    cmd.Actor.ID,
		NewValues:  userSnapshot(newUser),
		CreatedAt:  time.Now(),
	}
	if err := uc.audit.Record(ctx, rec); err != nil {
		uc.logger.Warnw("failed to write audit record", "error", err, "entity_id", newUser.ID())
	}

	uc.logger.Infow("user registered",
		"user_id", newUser.ID(),
		"account_code", newUser.AccountCode(),
		"role", newUser.Role(),
	)

	return &RegisterUserResult{User: newUserInfo(newUser)}, nil
}

func (uc *RegisterUserUseCase) validateCommand(cmd RegisterUserCommand) (authorization.Role, error) {
	if cmd.DisplayName == "" {
		return "", errors.NewValidationError("display name is required")
	}
	if _, err := mail.ParseAddress(cmd.Email); err != nil {
		return "", errors.NewValidationError("invalid email address")
	}
	if len(cmd.Password) < minPasswordLength {
		return "", errors.NewValidationError("password must be at least 8 characters")
	}
	role, ok := authorization.ParseRole(cmd.Role)
	if !ok {
		return "", errors.NewValidationError("invalid role")
	}
	return role, nil
}

func userSnapshot(u *user.User) map[string]any {
	return map[string]any{
		"account_code": u.AccountCode(),
		"display_name": u.DisplayName(),
		"email":        u.Email(),
		"role":         u.Role().String(),
		"is_active":    u.IsActive(),
	}
}
