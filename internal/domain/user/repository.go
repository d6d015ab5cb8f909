package user

import (
	"context"

	"github.com/nexorbs/nexportal/internal/shared/authorization"
)

// Field enumerates the columns a sparse user update may touch. Repositories
// map these to columns through a fixed whitelist; nothing outside this set
// can reach the storage layer.
type Field string

const (
	FieldDisplayName  Field = "display_name"
	FieldEmail        Field = "email"
	FieldPasswordHash Field = "password_hash"
	FieldRole         Field = "role"
	FieldIsActive     Field = "is_active"
	FieldCompanyName  Field = "company_name"
	FieldPhone        Field = "phone"
	FieldLastLogin    Field = "last_login"
)

// Changes is a sparse patch: only the fields present are written.
type Changes map[Field]any

// Filter narrows List queries.
type Filter struct {
	Role     *authorization.Role
	IsActive *bool
	Page     int
	Limit    int
}

type Repository interface {
	Save(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByLogin matches the login contract: id plus display name, active only.
	GetByLogin(ctx context.Context, id, displayName string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int64, error)
	UpdateFields(ctx context.Context, id string, changes Changes) error
	Delete(ctx context.Context, id string) error
}
