package handlers

import (
	"encoding/json"
	"time"

	"github.com/nexorbs/nexportal/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	ProjectID   string  `json:"project_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Priority    string  `json:"priority"`
	Category    string  `json:"category" binding:"required"`
}

// OptionalString distinguishes an absent JSON field from an explicit null.
// Needed for assigned_developer_id, where null means unassign.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

type UpdateTicketRequest struct {
	Title               *string        `json:"title"`
	Description         *string        `json:"description"`
	Priority            *string        `json:"priority"`
	Category            *string        `json:"category"`
	Status              *string        `json:"status"`
	AssignedDeveloperID OptionalString `json:"assigned_developer_id"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type TicketResponse struct {
	ID                  string     `json:"id"`
	Number              string     `json:"number"`
	ProjectID           string     `json:"project_id"`
	ClientID            string     `json:"client_id"`
	AssignedDeveloperID *string    `json:"assigned_developer_id,omitempty"`
	Title               string     `json:"title"`
	Description         *string    `json:"description,omitempty"`
	Priority            string     `json:"priority"`
	Status              string     `json:"status"`
	Category            string     `json:"category"`
	ResolvedAt          *time.Time `json:"resolved_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func newTicketResponse(t usecases.TicketDetails) TicketResponse {
	return TicketResponse{
		ID:                  t.ID,
		Number:              t.Number,
		ProjectID:           t.ProjectID,
		ClientID:            t.ClientID,
		AssignedDeveloperID: t.AssignedDeveloperID,
		Title:               t.Title,
		Description:         t.Description,
		Priority:            t.Priority,
		Status:              t.Status,
		Category:            t.Category,
		ResolvedAt:          t.ResolvedAt,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

type CommentResponse struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func newCommentResponse(cm usecases.CommentDetails) CommentResponse {
	return CommentResponse{
		ID:        cm.ID,
		TicketID:  cm.TicketID,
		UserID:    cm.UserID,
		Content:   cm.Content,
		CreatedAt: cm.CreatedAt,
	}
}
