package mappers

import (
	"fmt"

	"github.com/nexorbs/nexportal/internal/domain/user"
	"github.com/nexorbs/nexportal/internal/infrastructure/persistence/models"
	"github.com/nexorbs/nexportal/internal/shared/authorization"
)

// UserMapper converts between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		AccountCode:  u.AccountCode(),
		DisplayName:  u.DisplayName(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CompanyName:  u.CompanyName(),
		Phone:        u.Phone(),
		LastLogin:    u.LastLogin(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role, ok := authorization.ParseRole(model.Role)
	if !ok {
		return nil, fmt.Errorf("invalid role in storage (id=%s): %s", model.ID, model.Role)
	}

	u, err := user.ReconstructUser(
		model.ID,
		model.AccountCode,
		model.DisplayName,
		model.Email,
		model.PasswordHash,
		role,
		model.IsActive,
		model.CompanyName,
		model.Phone,
		model.LastLogin,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user (id=%s): %w", model.ID, err)
	}
	return u, nil
}
