package usecases

import (
	"context"

	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

type VerifyTokenCommand struct {
	Token string
}

type VerifyTokenResult struct {
	UserID      string
	AccountCode string
	DisplayName string
	Email       string
	Role        string
}

type VerifyTokenUseCase struct {
	tokens TokenService
	logger logger.Interface
}

func NewVerifyTokenUseCase(tokens TokenService, logger logger.Interface) *VerifyTokenUseCase {
	return &VerifyTokenUseCase{tokens: tokens, logger: logger}
}

func (uc *VerifyTokenUseCase) Execute(ctx context.Context, cmd VerifyTokenCommand) (*VerifyTokenResult, error) {
	if cmd.Token == "" {
		return nil, errors.NewValidationError("token is required")
	}

	claims, err := uc.tokens.Verify(cmd.Token)
	if err != nil {
		uc.logger.Debugw("token verification failed", "error", err)
		return nil, errors.NewAuthenticationError("invalid or expired token")
	}

	return &VerifyTokenResult{
		UserID:      claims.UserID,
		AccountCode: claims.AccountCode,
		DisplayName: claims.DisplayName,
		Email:       claims.Email,
		Role:        claims.Role,
	}, nil
}
