package valueobjects

import "fmt"

type ProjectStatus string

const (
	StatusActive    ProjectStatus = "active"
	StatusCompleted ProjectStatus = "completed"
	StatusCancelled ProjectStatus = "cancelled"
	StatusOnHold    ProjectStatus = "on_hold"
)

var validProjectStatuses = map[ProjectStatus]bool{
	StatusActive:    true,
	StatusCompleted: true,
	StatusCancelled: true,
	StatusOnHold:    true,
}

func (s ProjectStatus) String() string {
	return string(s)
}

func (s ProjectStatus) IsValid() bool {
	return validProjectStatuses[s]
}

func NewProjectStatus(s string) (ProjectStatus, error) {
	status := ProjectStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid project status: %s", s)
	}
	return status, nil
}
