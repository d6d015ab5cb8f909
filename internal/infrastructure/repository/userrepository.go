package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/nexorbs/nexportal/internal/domain/user"
	"github.com/nexorbs/nexportal/internal/infrastructure/persistence/mappers"
	"github.com/nexorbs/nexportal/internal/infrastructure/persistence/models"
	"github.com/nexorbs/nexportal/internal/shared/db"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
	"github.com/nexorbs/nexportal/internal/shared/utils"
)

// userColumns is the fixed whitelist mapping update fields to columns.
// Nothing outside this map can reach a SQL statement.
var userColumns = map[user.Field]string{
	user.FieldDisplayName:  "display_name",
	user.FieldEmail:        "email",
	user.FieldPasswordHash: "password_hash",
	user.FieldRole:         "role",
	user.FieldIsActive:     "is_active",
	user.FieldCompanyName:  "company_name",
	user.FieldPhone:        "phone",
	user.FieldLastLogin:    "last_login",
}

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(gormDB *gorm.DB, logger logger.Interface) *UserRepository {
	return &UserRepository{
		db:     gormDB,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return err
		}
		r.logger.Errorw("failed to insert user", "error", err, "user_id", u.ID())
		return errors.NewInternalError("failed to save user")
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	var model models.UserModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, errors.NewInternalError("failed to query user")
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	err := db.GetTxFromContext(ctx, r.db).Where("email = ?", email).First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, errors.NewInternalError("failed to query user")
	}
	return r.mapper.ToDomain(&model)
}

// GetByLogin resolves the login triple's lookup half: id plus display name,
// active accounts only.
func (r *UserRepository) GetByLogin(ctx context.Context, id, displayName string) (*user.User, error) {
	var model models.UserModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND display_name = ? AND is_active = ?", id, displayName, true).
		First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, errors.NewInternalError("failed to query user")
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{})

	if filter.Role != nil {
		query = query.Where("role = ?", filter.Role.String())
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.NewInternalError("failed to count users")
	}

	var modelList []models.UserModel
	err := query.
		Order("created_at DESC").
		Offset(utils.Offset(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, errors.NewInternalError("failed to list users")
	}

	users := make([]*user.User, 0, len(modelList))
	for i := range modelList {
		u, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			r.logger.Errorw("skipping unmappable user row", "error", err, "user_id", modelList[i].ID)
			continue
		}
		users = append(users, u)
	}
	return users, total, nil
}

func (r *UserRepository) UpdateFields(ctx context.Context, id string, changes user.Changes) error {
	if len(changes) == 0 {
		return errors.NewValidationError("no fields to update")
	}

	columns := make(map[string]any, len(changes))
	for field, value := range changes {
		column, ok := userColumns[field]
		if !ok {
			return errors.NewValidationError("unknown user field: " + string(field))
		}
		columns[column] = value
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return result.Error
		}
		r.logger.Errorw("failed to update user", "error", result.Error, "user_id", id)
		return errors.NewInternalError("failed to update user")
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", id).
		Delete(&models.UserModel{})
	if result.Error != nil {
		return errors.NewInternalError("failed to delete user")
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found")
	}
	return nil
}
