package usecases

import (
	"context"

	"github.com/nexorbs/nexportal/internal/domain/access"
	"github.com/nexorbs/nexportal/internal/domain/ticket"
	vo "github.com/nexorbs/nexportal/internal/domain/ticket/valueobjects"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
	"github.com/nexorbs/nexportal/internal/shared/utils"
)

type ListTicketsCommand struct {
	Actor     access.Actor
	Status    *string
	Priority  *string
	Category  *string
	ProjectID *string
	// ClientID and AssignedTo are explicit filters, honored for admins only.
	ClientID   *string
	AssignedTo *string
	Page       int
	Limit      int
}

type ListTicketsResult struct {
	Tickets    []TicketDetails
	Pagination utils.Pagination
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	filter := ticket.Filter{ProjectID: cmd.ProjectID}

	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}
	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = &priority
	}
	if cmd.Category != nil {
		category, err := vo.NewCategory(*cmd.Category)
		if err != nil {
			return nil, errors.NewValidationError("invalid category filter")
		}
		filter.Category = &category
	}

	scope := access.TicketListScope(cmd.Actor)
	switch {
	case scope.ClientID != nil:
		filter.ClientID = scope.ClientID
	case scope.AssigneeOrUnassigned != nil:
		filter.AssigneeOrUnassigned = scope.AssigneeOrUnassigned
	default:
		filter.ClientID = cmd.ClientID
		filter.AssignedTo = cmd.AssignedTo
	}

	filter.Page, filter.Limit = utils.NormalizePage(cmd.Page, cmd.Limit)

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	details := make([]TicketDetails, 0, len(tickets))
	for _, t := range tickets {
		details = append(details, newTicketDetails(t))
	}

	return &ListTicketsResult{
		Tickets:    details,
		Pagination: utils.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}
