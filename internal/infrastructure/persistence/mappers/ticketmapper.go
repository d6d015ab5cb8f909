package mappers

import (
	"fmt"

	"github.com/nexorbs/nexportal/internal/domain/ticket"
	vo "github.com/nexorbs/nexportal/internal/domain/ticket/valueobjects"
	"github.com/nexorbs/nexportal/internal/infrastructure/persistence/models"
)

// TicketMapper converts between Ticket/Comment domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
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

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	t, err := ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.ProjectID,
		model.ClientID,
		model.AssignedDeveloperID,
		model.Title,
		model.Description,
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		vo.Category(model.Category),
		model.ResolvedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket (id=%s): %w", model.ID, err)
	}
	return t, nil
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	c, err := ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Content,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct comment (id=%s): %w", model.ID, err)
	}
	return c, nil
}
