package user

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/nexorbs/nexportal/internal/shared/authorization"
)

// User is the account aggregate. Users are never hard-deleted through normal
// operation; deactivation flips the active flag.
type User struct {
	id           string
	accountCode  string
	displayName  string
	email        string
	passwordHash string
	role         authorization.Role
	isActive     bool
	companyName  *string
	phone        *string
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(
	id string,
	accountCode string,
	displayName string,
	email string,
	passwordHash string,
	role authorization.Role,
	companyName *string,
	phone *string,
) (*User, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(accountCode) == 0 {
		return nil, fmt.Errorf("account code is required")
	}
	if len(displayName) == 0 {
		return nil, fmt.Errorf("display name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		id:           id,
		accountCode:  accountCode,
		displayName:  displayName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		companyName:  companyName,
		phone:        phone,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id string,
	accountCode string,
	displayName string,
	email string,
	passwordHash string,
	role authorization.Role,
	isActive bool,
	companyName *string,
	phone *string,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		accountCode:  accountCode,
		displayName:  displayName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		companyName:  companyName,
		phone:        phone,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() string               { return u.id }
func (u *User) AccountCode() string      { return u.accountCode }
func (u *User) DisplayName() string      { return u.displayName }
func (u *User) Email() string            { return u.email }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) Role() authorization.Role { return u.role }
func (u *User) IsActive() bool           { return u.isActive }
func (u *User) CompanyName() *string     { return u.companyName }
func (u *User) Phone() *string           { return u.phone }
func (u *User) LastLogin() *time.Time    { return u.lastLogin }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }

// IsActiveClient reports whether the user can own projects.
func (u *User) IsActiveClient() bool {
	return u.isActive && u.role.IsClient()
}

// IsActiveDeveloper reports whether the user can be assigned tickets.
func (u *User) IsActiveDeveloper() bool {
	return u.isActive && u.role.IsDeveloper()
}

// RecordLogin stamps the last-login timestamp.
func (u *User) RecordLogin() {
	now := time.Now()
	u.lastLogin = &now
	u.updatedAt = now
}
