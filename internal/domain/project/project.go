package project

import (
	"fmt"
	"time"

	vo "github.com/nexorbs/nexportal/internal/domain/project/valueobjects"
)

// Project is owned by exactly one client user. Creation, update and deletion
// are admin operations; clients only ever read their own projects.
type Project struct {
	id                string
	code              string
	clientID          string
	name              string
	description       *string
	projectType       vo.ProjectType
	status            vo.ProjectStatus
	estimatedBudget   *float64
	estimatedDuration *int
	startDate         *time.Time
	deadline          *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

func NewProject(
	id string,
	code string,
	clientID string,
	name string,
	description *string,
	projectType vo.ProjectType,
	estimatedBudget *float64,
	estimatedDuration *int,
	startDate *time.Time,
	deadline *time.Time,
) (*Project, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("project code is required")
	}
	if len(clientID) == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !projectType.IsValid() {
		return nil, fmt.Errorf("invalid project type: %s", projectType)
	}

	now := time.Now()
	return &Project{
		id:                id,
		code:              code,
		clientID:          clientID,
		name:              name,
		description:       description,
		projectType:       projectType,
		status:            vo.StatusActive,
		estimatedBudget:   estimatedBudget,
		estimatedDuration: estimatedDuration,
		startDate:         startDate,
		deadline:          deadline,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructProject(
	id string,
	code string,
	clientID string,
	name string,
	description *string,
	projectType vo.ProjectType,
	status vo.ProjectStatus,
	estimatedBudget *float64,
	estimatedDuration *int,
	startDate *time.Time,
	deadline *time.Time,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if !projectType.IsValid() {
		return nil, fmt.Errorf("invalid project type: %s", projectType)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid project status: %s", status)
	}

	return &Project{
		id:                id,
		code:              code,
		clientID:          clientID,
		name:              name,
		description:       description,
		projectType:       projectType,
		status:            status,
		estimatedBudget:   estimatedBudget,
		estimatedDuration: estimatedDuration,
		startDate:         startDate,
		deadline:          deadline,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (p *Project) ID() string                { return p.id }
func (p *Project) Code() string              { return p.code }
func (p *Project) ClientID() string          { return p.clientID }
func (p *Project) Name() string              { return p.name }
func (p *Project) Description() *string      { return p.description }
func (p *Project) Type() vo.ProjectType      { return p.projectType }
func (p *Project) Status() vo.ProjectStatus  { return p.status }
func (p *Project) EstimatedBudget() *float64 { return p.estimatedBudget }
func (p *Project) EstimatedDuration() *int   { return p.estimatedDuration }
func (p *Project) StartDate() *time.Time     { return p.startDate }
func (p *Project) Deadline() *time.Time      { return p.deadline }
func (p *Project) CreatedAt() time.Time      { return p.createdAt }
func (p *Project) UpdatedAt() time.Time      { return p.updatedAt }

// IsOwnedBy reports whether the given user is the owning client.
func (p *Project) IsOwnedBy(userID string) bool {
	return p.clientID == userID
}
