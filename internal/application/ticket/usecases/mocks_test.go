package usecases

import (
	"context"

	"github.com/nexorbs/nexportal/internal/domain/audit"
	"github.com/nexorbs/nexportal/internal/domain/project"
	"github.com/nexorbs/nexportal/internal/domain/ticket"
	"github.com/nexorbs/nexportal/internal/domain/user"
)

type mockTicketRepository struct {
	SaveFunc         func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc      func(ctx context.Context, id string) (*ticket.Ticket, error)
	GetByNumberFunc  func(ctx context.Context, number string) (*ticket.Ticket, error)
	ListFunc         func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	UpdateFieldsFunc func(ctx context.Context, id string, changes ticket.Changes) error
	SaveCommentFunc  func(ctx context.Context, c *ticket.Comment) error
	ListCommentsFunc func(ctx context.Context, ticketID string) ([]*ticket.Comment, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) UpdateFields(ctx context.Context, id string, changes ticket.Changes) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, changes)
	}
	return nil
}

func (m *mockTicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	if m.SaveCommentFunc != nil {
		return m.SaveCommentFunc(ctx, c)
	}
	return nil
}

func (m *mockTicketRepository) ListComments(ctx context.Context, ticketID string) ([]*ticket.Comment, error) {
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockProjectRepository struct {
	SaveFunc         func(ctx context.Context, p *project.Project) error
	GetByIDFunc      func(ctx context.Context, id string) (*project.Project, error)
	ListFunc         func(ctx context.Context, filter project.Filter) ([]*project.Project, int64, error)
	UpdateFieldsFunc func(ctx context.Context, id string, changes project.Changes) error
	DeleteFunc       func(ctx context.Context, id string) error
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id string) (*project.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepository) List(ctx context.Context, filter project.Filter) ([]*project.Project, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockProjectRepository) UpdateFields(ctx context.Context, id string, changes project.Changes) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, changes)
	}
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

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

type mockSequenceAllocator struct {
	NextFunc func(ctx context.Context, seqType string, year int) (int, error)
}

func (m *mockSequenceAllocator) Next(ctx context.Context, seqType string, year int) (int, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, seqType, year)
	}
	return 1, nil
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
