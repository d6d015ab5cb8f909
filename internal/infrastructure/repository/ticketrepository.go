package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/nexorbs/nexportal/internal/domain/ticket"
	"github.com/nexorbs/nexportal/internal/infrastructure/persistence/mappers"
	"github.com/nexorbs/nexportal/internal/infrastructure/persistence/models"
	"github.com/nexorbs/nexportal/internal/shared/db"
	"github.com/nexorbs/nexportal/internal/shared/errors"
	"github.com/nexorbs/nexportal/internal/shared/logger"
	"github.com/nexorbs/nexportal/internal/shared/utils"
)

var ticketColumns = map[ticket.Field]string{
	ticket.FieldTitle:               "title",
	ticket.FieldDescription:         "description",
	ticket.FieldPriority:            "priority",
	ticket.FieldStatus:              "status",
	ticket.FieldCategory:            "category",
	ticket.FieldAssignedDeveloperID: "assigned_developer_id",
	ticket.FieldResolvedAt:          "resolved_at",
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(gormDB *gorm.DB, logger logger.Interface) *TicketRepository {
	return &TicketRepository{
		db:     gormDB,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return err
		}
		r.logger.Errorw("failed to insert ticket", "error", err, "ticket_id", t.ID())
		return errors.NewInternalError("failed to save ticket")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, errors.NewInternalError("failed to query ticket")
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).Where("number = ?", number).First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, errors.NewInternalError("failed to query ticket")
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_developer_id = ?", *filter.AssignedTo)
	}
	if filter.AssigneeOrUnassigned != nil {
		query = query.Where("assigned_developer_id = ? OR assigned_developer_id IS NULL", *filter.AssigneeOrUnassigned)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.NewInternalError("failed to count tickets")
	}

	var modelList []models.TicketModel
	err := query.
		Order("created_at DESC").
		Offset(utils.Offset(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, errors.NewInternalError("failed to list tickets")
	}

	tickets := make([]*ticket.Ticket, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			r.logger.Errorw("skipping unmappable ticket row", "error", err, "ticket_id", modelList[i].ID)
			continue
		}
		tickets = append(tickets, t)
	}
	return tickets, total, nil
}

func (r *TicketRepository) UpdateFields(ctx context.Context, id string, changes ticket.Changes) error {
	if len(changes) == 0 {
		return errors.NewValidationError("no fields to update")
	}

	columns := make(map[string]any, len(changes))
	for field, value := range changes {
		column, ok := ticketColumns[field]
		if !ok {
			return errors.NewValidationError("unknown ticket field: " + string(field))
		}
		columns[column] = value
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "error", result.Error, "ticket_id", id)
		return errors.NewInternalError("failed to update ticket")
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to insert comment", "error", err, "comment_id", c.ID())
		return errors.NewInternalError("failed to save comment")
	}
	return nil
}

func (r *TicketRepository) ListComments(ctx context.Context, ticketID string) ([]*ticket.Comment, error) {
	var modelList []models.CommentModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, errors.NewInternalError("failed to list comments")
	}

	comments := make([]*ticket.Comment, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.CommentToDomain(&modelList[i])
		if err != nil {
			r.logger.Errorw("skipping unmappable comment row", "error", err, "comment_id", modelList[i].ID)
			continue
		}
		comments = append(comments, c)
	}
	return comments, nil
}
