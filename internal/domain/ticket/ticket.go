package ticket

import (
	"fmt"
	"time"

	vo "github.com/nexorbs/nexportal/internal/domain/ticket/valueobjects"
)

// Ticket belongs to a project and to the project's client. A developer holds
// it only through the assignment back-reference; assignment does not imply
// ownership.
type Ticket struct {
	id                  string
	number              string
	projectID           string
	clientID            string
	assignedDeveloperID *string
	title               string
	description         *string
	priority            vo.Priority
	status              vo.TicketStatus
	category            vo.Category
	resolvedAt          *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

func NewTicket(
	id string,
	number string,
	projectID string,
	clientID string,
	title string,
	description *string,
	priority vo.Priority,
	category vo.Category,
) (*Ticket, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if len(projectID) == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(clientID) == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}

	now := time.Now()
	return &Ticket{
		id:          id,
		number:      number,
		projectID:   projectID,
		clientID:    clientID,
		title:       title,
		description: description,
		priority:    priority,
		status:      vo.StatusOpen,
		category:    category,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id string,
	number string,
	projectID string,
	clientID string,
	assignedDeveloperID *string,
	title string,
	description *string,
	priority vo.Priority,
	status vo.TicketStatus,
	category vo.Category,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}

	return &Ticket{
		id:                  id,
		number:              number,
		projectID:           projectID,
		clientID:            clientID,
		assignedDeveloperID: assignedDeveloperID,
		title:               title,
		description:         description,
		priority:            priority,
		status:              status,
		category:            category,
		resolvedAt:          resolvedAt,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (t *Ticket) ID() string                   { return t.id }
func (t *Ticket) Number() string               { return t.number }
func (t *Ticket) ProjectID() string            { return t.projectID }
func (t *Ticket) ClientID() string             { return t.clientID }
func (t *Ticket) AssignedDeveloperID() *string { return t.assignedDeveloperID }
func (t *Ticket) Title() string                { return t.title }
func (t *Ticket) Description() *string         { return t.description }
func (t *Ticket) Priority() vo.Priority        { return t.priority }
func (t *Ticket) Status() vo.TicketStatus      { return t.status }
func (t *Ticket) Category() vo.Category        { return t.category }
func (t *Ticket) ResolvedAt() *time.Time       { return t.resolvedAt }
func (t *Ticket) CreatedAt() time.Time         { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time         { return t.updatedAt }

// IsUnassigned reports whether no developer currently holds the ticket.
func (t *Ticket) IsUnassigned() bool {
	return t.assignedDeveloperID == nil
}

// IsAssignedTo reports whether the given developer holds the ticket.
func (t *Ticket) IsAssignedTo(developerID string) bool {
	return t.assignedDeveloperID != nil && *t.assignedDeveloperID == developerID
}

// IsOwnedBy reports whether the given user is the ticket's client.
func (t *Ticket) IsOwnedBy(userID string) bool {
	return t.clientID == userID
}
