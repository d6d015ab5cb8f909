package project

import (
	"context"

	vo "github.com/nexorbs/nexportal/internal/domain/project/valueobjects"
)

// Field enumerates the columns a sparse project update may touch.
type Field string

const (
	FieldName              Field = "name"
	FieldDescription       Field = "description"
	FieldType              Field = "type"
	FieldStatus            Field = "status"
	FieldClientID          Field = "client_id"
	FieldEstimatedBudget   Field = "estimated_budget"
	FieldEstimatedDuration Field = "estimated_duration"
	FieldStartDate         Field = "start_date"
	FieldDeadline          Field = "deadline"
)

// Changes is a sparse patch: only the fields present are written.
type Changes map[Field]any

// Filter narrows List queries. ClientID doubles as the ownership scope for
// non-admin actors.
type Filter struct {
	Status   *vo.ProjectStatus
	Type     *vo.ProjectType
	ClientID *string
	// DenyAll short-circuits to an empty result set (developer project scope).
	DenyAll bool
	Page    int
	Limit   int
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, filter Filter) ([]*Project, int64, error)
	UpdateFields(ctx context.Context, id string, changes Changes) error
	Delete(ctx context.Context, id string) error
}
