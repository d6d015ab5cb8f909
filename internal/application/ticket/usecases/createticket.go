package usecases

import (
	"context"
	"time"

	"github.com/nexorbs/nexportal/internal/domain/access"
	"github.com/nexorbs/nexportal/internal/domain/audit"
	"github.com/nexorbs/nexportal/internal/domain/project"
	"github.com/nexorbs/nexportal/internal/domain/sequence"
	"github.com/nexorbs/nexportal/internal/domain/ticket"
	vo "github.com/nexorbs/nexportal/internal/domain/ticket/valueobjects"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/id"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

type CreateTicketCommand struct {
	Actor       access.Actor
	ProjectID   string
	Title       string
	Description *string
	Priority    string
	Category    string
}

// TicketDetails is the ticket projection returned by all ticket operations.
type TicketDetails struct {
	ID                  string
	Number              string
	ProjectID           string
	ClientID            string
	AssignedDeveloperID *string
	Title               string
	Description         *string
	Priority            string
	Status              string
	Category            string
	ResolvedAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type CreateTicketResult struct {
	Ticket TicketDetails
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.Repository
	projectRepo project.Repository
	sequences   sequence.Allocator
	audit       audit.Sink
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	projectRepo project.Repository,
	sequences sequence.Allocator,
	auditSink audit.Sink,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		sequences:   sequences,
		audit:       auditSink,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if cmd.Title == "" {
		return nil, errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 200 {
		return nil, errors.NewValidationError("title exceeds maximum length of 200 characters")
	}

	priority := vo.PriorityMedium
	if cmd.Priority != "" {
		priority = vo.Priority(cmd.Priority)
		if !priority.IsValid() {
			return nil, errors.NewValidationError("invalid priority")
		}
	}
	category := vo.Category(cmd.Category)
	if !category.IsValid() {
		return nil, errors.NewValidationError("invalid category")
	}

	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := access.CanCreateTicket(cmd.Actor, access.ProjectRef{ClientID: p.ClientID()}); err != nil {
		return nil, err
	}

	year := time.Now().Year()
	counter, err := uc.sequences.Next(ctx, sequence.TypeTicket, year)
	if err != nil {
		uc.logger.Errorw("failed to allocate ticket sequence", "error", err, "year", year)
		return nil, errors.NewInternalError("failed to allocate ticket number")
	}
	number := sequence.FormatTicketNumber(year, counter)

	ticketID, err := id.NewEntityID()
	if err != nil {
		uc.logger.Errorw("failed to generate ticket ID", "error", err)
		return nil, errors.NewInternalError("failed to generate ticket ID")
	}

	// The ticket always belongs to the project's client, regardless of who
	// files it.
	newTicket, err := ticket.NewTicket(
		ticketID,
		number,
		p.ID(),
		p.ClientID(),
		cmd.Title,
		cmd.Description,
		priority,
		category,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "number", number)
		return nil, err
	}

	rec := audit.Record{
		EntityType: audit.EntityTicket,
		EntityID:   newTicket.ID(),
		Action:     audit.ActionCreate,
		ActorID:    cmd.Actor.ID,
		NewValues:  ticketSnapshot(newTicket),
		CreatedAt:  time.Now(),
	}
	if err := uc.audit.Record(ctx, rec); err != nil {
		uc.logger.Warnw("failed to write audit record", "error", err, "entity_id", newTicket.ID())
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "number", number, "project_id", p.ID())

	return &CreateTicketResult{Ticket: newTicketDetails(newTicket)}, nil
}

func newTicketDetails(t *ticket.Ticket) TicketDetails {
	return TicketDetails{
		ID:                  t.ID(),
		Number:              t.Number(),
		ProjectID:           t.ProjectID(),
		ClientID:            t.ClientID(),
		AssignedDeveloperID: t.AssignedDeveloperID(),
		Title:               t.Title(),
		Description:         t.Description(),
		Priority:            t.Priority().String(),
		Status:              t.Status().String(),
		Category:            t.Category().String(),
		ResolvedAt:          t.ResolvedAt(),
		CreatedAt:           t.CreatedAt(),
		UpdatedAt:           t.UpdatedAt(),
	}
}

func ticketSnapshot(t *ticket.Ticket) map[string]any {
	snapshot := map[string]any{
		"number":     t.Number(),
		"project_id": t.ProjectID(),
		"client_id":  t.ClientID(),
		"title":      t.Title(),
		"priority":   t.Priority().String(),
		"status":     t.Status().String(),
		"category":   t.Category().String(),
	}
	if t.AssignedDeveloperID() != nil {
		snapshot["assigned_developer_id"] = *t.AssignedDeveloperID()
	}
	return snapshot
}
