package usecases

import (
	"context"
	"time"

	"github.com/nexorbs/nexportal/internal/domain/access"
	"github.com/nexorbs/nexportal/internal/domain/ticket"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

type GetTicketCommand struct {
	Actor    access.Actor
	TicketID string
}

// CommentDetails is the comment projection returned with ticket detail.
type CommentDetails struct {
	ID        string
	TicketID  string
	UserID    string
	Content   string
	CreatedAt time.Time
}

type GetTicketResult struct {
	Ticket   TicketDetails
	Comments []CommentDetails
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	ref := access.TicketRef{
		ClientID:            t.ClientID(),
		AssignedDeveloperID: t.AssignedDeveloperID(),
	}
	if err := access.CanViewTicket(cmd.Actor, ref); err != nil {
		return nil, err
	}

	comments, err := uc.ticketRepo.ListComments(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list ticket comments", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	details := make([]CommentDetails, 0, len(comments))
	for _, c := range comments {
		details = append(details, newCommentDetails(c))
	}

	return &GetTicketResult{
		Ticket:   newTicketDetails(t),
		Comments: details,
	}, nil
}

func newCommentDetails(c *ticket.Comment) CommentDetails {
	return CommentDetails{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}
