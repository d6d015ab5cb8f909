package usecases

import (
	"context"
	"time"

	"github.com/nexorbs/nexportal/internal/domain/user"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

type LoginCommand struct {
	UserID      string
	DisplayName string
	Password    string
}

type LoginResult struct {
	Token string
	User  UserInfo
}

// UserInfo is the user projection returned by auth operations.
type UserInfo struct {
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
}

type LoginUseCase struct {
	userRepo user.Repository
	tokens   TokenService
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	tokens TokenService,
	hasher PasswordHasher,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.UserID == "" || cmd.DisplayName == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("id, display name and password are required")
	}

	u, err := uc.userRepo.GetByLogin(ctx, cmd.UserID, cmd.DisplayName)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Do not reveal which part of the credentials failed.
			return nil, errors.NewAuthenticationError("invalid credentials")
		}
		uc.logger.Errorw("failed to look up user for login", "error", err)
		return nil, err
	}

	if !uc.hasher.Verify(u.PasswordHash(), cmd.Password) {
		uc.logger.Warnw("login rejected: wrong password", "user_id", u.ID())
		return nil, errors.NewAuthenticationError("invalid credentials")
	}

	token, err := uc.tokens.Generate(u)
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to generate token")
	}

	u.RecordLogin()
	changes := user.Changes{user.FieldLastLogin: *u.LastLogin()}
	if err := uc.userRepo.UpdateFields(ctx, u.ID(), changes); err != nil {
		// Login still succeeds; the stamp is best effort.
		uc.logger.Warnw("failed to record last login", "error", err, "user_id", u.ID())
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role())

	return &LoginResult{
		Token: token,
		User:  newUserInfo(u),
	}, nil
}

func newUserInfo(u *user.User) UserInfo {
	return UserInfo{
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
	}
}
