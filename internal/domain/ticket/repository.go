package ticket

import (
	"context"

	vo "github.com/nexorbs/nexportal/internal/domain/ticket/valueobjects"
)

// Field enumerates the columns a sparse ticket update may touch.
type Field string

const (
	FieldTitle               Field = "title"
	FieldDescription         Field = "description"
	FieldPriority            Field = "priority"
	FieldStatus              Field = "status"
	FieldCategory            Field = "category"
	FieldAssignedDeveloperID Field = "assigned_developer_id"
	FieldResolvedAt          Field = "resolved_at"
)

// Changes is a sparse patch: only the fields present are written.
type Changes map[Field]any

// Filter narrows List queries. ClientID and AssigneeOrUnassigned carry the
// role-based ownership scope; explicit filters stack on top.
type Filter struct {
	Status    *vo.TicketStatus
	Priority  *vo.Priority
	Category  *vo.Category
	ProjectID *string
	ClientID  *string
	// AssignedTo filters on the exact assignee (admin filter parameter).
	AssignedTo *string
	// AssigneeOrUnassigned matches tickets assigned to the given developer or
	// assigned to nobody (developer list scope).
	AssigneeOrUnassigned *string
	Page                 int
	Limit                int
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id string) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	UpdateFields(ctx context.Context, id string, changes Changes) error

	SaveComment(ctx context.Context, c *Comment) error
	ListComments(ctx context.Context, ticketID string) ([]*Comment, error)
}
