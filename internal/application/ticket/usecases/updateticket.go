package usecases

import (
	"context"
	"time"

	"github.com/nexorbs/nexportal/internal/domain/access"
	"github.com/nexorbs/nexportal/internal/domain/audit"
	"github.com/nexorbs/nexportal/internal/domain/ticket"
	vo "github.com/nexorbs/nexportal/internal/domain/ticket/valueobjects"
	"github.com/nexorbs/nexportal/internal/domain/user"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

// UpdateTicketCommand is a sparse patch. SetAssignee distinguishes "leave
// the assignment alone" from "set it to AssignedDeveloperID, including nil
// to unassign".
type UpdateTicketCommand struct {
	Actor               access.Actor
	TicketID            string
	Title               *string
	Description         *string
	Priority            *string
	Category            *string
	Status              *string
	SetAssignee         bool
	AssignedDeveloperID *string
}

type UpdateTicketResult struct {
	Ticket TicketDetails
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	audit      audit.Sink
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	auditSink audit.Sink,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		audit:      auditSink,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	// Enum validity is checked before authorization: an out-of-enum status is
	// a 400 for everyone, not a 403.
	var newStatus vo.TicketStatus
	if cmd.Status != nil {
		newStatus, err = vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid ticket status")
		}
	}

	ref := access.TicketRef{
		ClientID:            existing.ClientID(),
		AssignedDeveloperID: existing.AssignedDeveloperID(),
	}
	upd := access.TicketUpdate{
		SetsAssignee: cmd.SetAssignee,
		AssigneeID:   cmd.AssignedDeveloperID,
		SetsStatus:   cmd.Status != nil,
		Status:       newStatus,
	}
	if err := access.CanUpdateTicket(cmd.Actor, ref, upd); err != nil {
		return nil, err
	}

	changes, err := uc.buildChanges(ctx, existing, cmd, newStatus)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return nil, errors.NewValidationError("no fields to update")
	}

	if err := uc.ticketRepo.UpdateFields(ctx, cmd.TicketID, changes); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	updated, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	rec := audit.Record{
		EntityType: audit.EntityTicket,
		EntityID:   cmd.TicketID,
		Action:     audit.ActionUpdate,
		ActorID:    cmd.Actor.ID,
		OldValues:  ticketSnapshot(existing),
		NewValues:  ticketSnapshot(updated),
		CreatedAt:  time.Now(),
	}
	if err := uc.audit.Record(ctx, rec); err != nil {
		uc.logger.Warnw("failed to write audit record", "error", err, "entity_id", cmd.TicketID)
	}

	uc.logger.Infow("ticket updated", "ticket_id", cmd.TicketID, "fields", len(changes))

	return &UpdateTicketResult{Ticket: newTicketDetails(updated)}, nil
}

func (uc *UpdateTicketUseCase) buildChanges(ctx context.Context, existing *ticket.Ticket, cmd UpdateTicketCommand, newStatus vo.TicketStatus) (ticket.Changes, error) {
	changes := ticket.Changes{}

	if cmd.Title != nil {
		if *cmd.Title == "" {
			return nil, errors.NewValidationError("title cannot be empty")
		}
		if len(*cmd.Title) > 200 {
			return nil, errors.NewValidationError("title exceeds maximum length of 200 characters")
		}
		changes[ticket.FieldTitle] = *cmd.Title
	}
	if cmd.Description != nil {
		changes[ticket.FieldDescription] = *cmd.Description
	}
	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority")
		}
		changes[ticket.FieldPriority] = priority.String()
	}
	if cmd.Category != nil {
		category, err := vo.NewCategory(*cmd.Category)
		if err != nil {
			return nil, errors.NewValidationError("invalid category")
		}
		changes[ticket.FieldCategory] = category.String()
	}

	if cmd.Status != nil {
		changes[ticket.FieldStatus] = newStatus.String()
		// Every transition to resolved stamps resolved_at; no other status
		// touches it, so the stamp survives a reopen.
		if newStatus.IsResolved() {
			changes[ticket.FieldResolvedAt] = time.Now()
		}
	}

	if cmd.SetAssignee {
		if cmd.AssignedDeveloperID != nil {
			assignee, err := uc.userRepo.GetByID(ctx, *cmd.AssignedDeveloperID)
			if err != nil {
				if errors.IsNotFoundError(err) {
					return nil, errors.NewNotFoundError("assignee not found")
				}
				return nil, err
			}
			if !assignee.IsActiveDeveloper() {
				return nil, errors.NewNotFoundError("assignee not found or not an active developer")
			}
			changes[ticket.FieldAssignedDeveloperID] = *cmd.AssignedDeveloperID
		} else {
			changes[ticket.FieldAssignedDeveloperID] = nil
		}
	}

	return changes, nil
}
