package usecases

import (
	"context"
	"time"

	"github.com/nexorbs/nexportal/internal/domain/access"
	"github.com/nexorbs/nexportal/internal/domain/audit"
	"github.com/nexorbs/nexportal/internal/domain/ticket"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/id"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

type AddCommentCommand struct {
	Actor    access.Actor
	TicketID string
	Content  string
}

type AddCommentResult struct {
	Comment CommentDetails
}

type AddCommentUseCase struct {
	ticketRepo ticket.Repository
	audit      audit.Sink
	logger     logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	auditSink audit.Sink,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo: ticketRepo,
		audit:      auditSink,
		logger:     logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
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
	if err := access.CanCommentOnTicket(cmd.Actor, ref); err != nil {
		return nil, err
	}

	commentID, err := id.NewEntityID()
	if err != nil {
		uc.logger.Errorw("failed to generate comment ID", "error", err)
		return nil, errors.NewInternalError("failed to generate comment ID")
	}

	comment, err := ticket.NewComment(commentID, t.ID(), cmd.Actor.ID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.SaveComment(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	rec := audit.Record{
		EntityType: audit.EntityComment,
		EntityID:   comment.ID(),
		Action:     audit.ActionCreate,
		ActorID:    cmd.Actor.ID,
		NewValues: map[string]any{
			"ticket_id": comment.TicketID(),
			"content":   comment.Content(),
		},
		CreatedAt: time.Now(),
	}
	if err := uc.audit.Record(ctx, rec); err != nil {
		uc.logger.Warnw("failed to write audit record", "error", err, "entity_id", comment.ID())
	}

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "ticket_id", t.ID())

	return &AddCommentResult{Comment: newCommentDetails(comment)}, nil
}
