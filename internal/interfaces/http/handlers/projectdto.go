package handlers

import (
	"time"

	"github.com/nexorbs/nexportal/internal/application/project/usecases"
)

type CreateProjectRequest struct {
	ClientID          string     `json:"client_id" binding:"required"`
	Name              string     `json:"name" binding:"required"`
	Description       *string    `json:"description"`
	Type              string     `json:"type" binding:"required"`
	EstimatedBudget   *float64   `json:"estimated_budget"`
	EstimatedDuration *int       `json:"estimated_duration"`
	StartDate         *time.Time `json:"start_date"`
	Deadline          *time.Time `json:"deadline"`
}

type UpdateProjectRequest struct {
	Name              *string    `json:"name"`
	Description       *string    `json:"description"`
	Type              *string    `json:"type"`
	Status            *string    `json:"status"`
	ClientID          *string    `json:"client_id"`
	EstimatedBudget   *float64   `json:"estimated_budget"`
	EstimatedDuration *int       `json:"estimated_duration"`
	StartDate         *time.Time `json:"start_date"`
	Deadline          *time.Time `json:"deadline"`
}

type ProjectResponse struct {
	ID                string     `json:"id"`
	Code              string     `json:"code"`
	ClientID          string     `json:"client_id"`
	Name              string     `json:"name"`
	Description       *string    `json:"description,omitempty"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	EstimatedBudget   *float64   `json:"estimated_budget,omitempty"`
	EstimatedDuration *int       `json:"estimated_duration,omitempty"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func newProjectResponse(p usecases.ProjectDetails) ProjectResponse {
	return ProjectResponse{
		ID:                p.ID,
		Code:              p.Code,
		ClientID:          p.ClientID,
		Name:              p.Name,
		Description:       p.Description,
		Type:              p.ProjectType,
		Status:            p.Status,
		EstimatedBudget:   p.EstimatedBudget,
		EstimatedDuration: p.EstimatedDuration,
		StartDate:         p.StartDate,
		Deadline:          p.Deadline,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
