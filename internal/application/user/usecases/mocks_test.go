package usecases

import (
	"context"

	"github.com/nexorbs/nexportal/internal/domain/audit"
	"github.com/nexorbs/nexportal/internal/domain/user"
)

type mockUserRepository struct {
	SaveFunc         func(ctx context.Context, u *user.User) error
	GetByIDFunc      func(ctx context.Context, id string) (*user.User, error)
	GetByEmailFunc   func(ctx context.Context, email string) (*user.User, error)
	GetByLoginFunc   func(ctx context.Context, id, displayName string) (*user.User, error)
	ListFunc         func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error)
	UpdateFieldsFunc func(ctx context.Context, id string, changes user.Changes) error
	DeleteFunc       func(ctx context.Context, id string) error
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByLogin(ctx context.Context, id, displayName string) (*user.User, error) {
	if m.GetByLoginFunc != nil {
		return m.GetByLoginFunc(ctx, id, displayName)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) UpdateFields(ctx context.Context, id string, changes user.Changes) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, changes)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockPasswordHasher struct {
	HashFunc func(password string) (string, error)
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

type mockAuditSink struct {
	RecordFunc func(ctx context.Context, rec audit.Record) error
	Records    []audit.Record
}

func (m *mockAuditSink) Record(ctx context.Context, rec audit.Record) error {
	m.Records = append(m.Records, rec)
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, rec)
	}
	return nil
}
