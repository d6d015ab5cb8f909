package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vo "github.com/nexorbs/nexportal/internal/domain/ticket/valueobjects"
	"github.com/nexorbs/nexportal/internal/shared/authorization"
	"github.com/nexorbs/nexportal/internal/shared/errors"
)

func strPtr(s string) *string { return &s }

func admin() Actor     { return Actor{ID: "aaaa000000000001", Role: authorization.RoleAdmin} }
func client() Actor    { return Actor{ID: "cccc000000000001", Role: authorization.RoleClient} }
func developer() Actor { return Actor{ID: "dddd000000000001", Role: authorization.RoleDeveloper} }

func TestCanViewProject(t *testing.T) {
	own := ProjectRef{ClientID: client().ID}
	other := ProjectRef{ClientID: "cccc000000000099"}

	tests := []struct {
		name    string
		actor   Actor
		project ProjectRef
		allowed bool
	}{
		{"admin views any project", admin(), other, true},
		{"client views own project", client(), own, true},
		{"client denied on foreign project", client(), other, false},
		{"developer denied on any project", developer(), own, false},
		{"developer denied even on unowned", developer(), other, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanViewProject(tt.actor, tt.project)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, errors.IsAuthorizationError(err))
			}
		})
	}
}

func TestCanMutateProject(t *testing.T) {
	assert.NoError(t, CanMutateProject(admin()))
	assert.Error(t, CanMutateProject(client()))
	assert.Error(t, CanMutateProject(developer()))
}

func TestCanManageUsers(t *testing.T) {
	assert.NoError(t, CanManageUsers(admin()))
	assert.Error(t, CanManageUsers(client()))
	assert.Error(t, CanManageUsers(developer()))
}

func TestCanCreateTicket(t *testing.T) {
	own := ProjectRef{ClientID: client().ID}
	other := ProjectRef{ClientID: "cccc000000000099"}

	assert.NoError(t, CanCreateTicket(client(), own))
	assert.Error(t, CanCreateTicket(client(), other))
	assert.NoError(t, CanCreateTicket(developer(), other))
	assert.NoError(t, CanCreateTicket(admin(), other))
}

func TestCanViewTicket(t *testing.T) {
	dev := developer()
	mine := TicketRef{ClientID: client().ID, AssignedDeveloperID: nil}
	claimedByMe := TicketRef{ClientID: "cccc000000000099", AssignedDeveloperID: strPtr(dev.ID)}
	claimedByOther := TicketRef{ClientID: "cccc000000000099", AssignedDeveloperID: strPtr("dddd000000000099")}

	tests := []struct {
		name    string
		actor   Actor
		ticket  TicketRef
		allowed bool
	}{
		{"admin views any ticket", admin(), claimedByOther, true},
		{"client views own ticket", client(), mine, true},
		{"client denied on foreign ticket", client(), claimedByMe, false},
		{"developer views unassigned ticket", dev, TicketRef{ClientID: "x", AssignedDeveloperID: nil}, true},
		{"developer views own assignment", dev, claimedByMe, true},
		{"developer denied on someone else's assignment", dev, claimedByOther, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanViewTicket(tt.actor, tt.ticket)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCanUpdateTicket_Client(t *testing.T) {
	c := client()
	own := TicketRef{ClientID: c.ID}
	foreign := TicketRef{ClientID: "cccc000000000099"}

	tests := []struct {
		name    string
		ticket  TicketRef
		upd     TicketUpdate
		allowed bool
	}{
		{"edits own ticket fields", own, TicketUpdate{}, true},
		{"closes own ticket", own, TicketUpdate{SetsStatus: true, Status: vo.StatusClosed}, true},
		{"reopens own ticket", own, TicketUpdate{SetsStatus: true, Status: vo.StatusOpen}, true},
		{"cannot set in_progress", own, TicketUpdate{SetsStatus: true, Status: vo.StatusInProgress}, false},
		{"cannot set resolved", own, TicketUpdate{SetsStatus: true, Status: vo.StatusResolved}, false},
		{"cannot touch assignee", own, TicketUpdate{SetsAssignee: true, AssigneeID: strPtr("dddd000000000001")}, false},
		{"cannot unassign either", own, TicketUpdate{SetsAssignee: true, AssigneeID: nil}, false},
		{"denied on foreign ticket", foreign, TicketUpdate{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanUpdateTicket(c, tt.ticket, tt.upd)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, errors.IsAuthorizationError(err))
			}
		})
	}
}

func TestCanUpdateTicket_Developer(t *testing.T) {
	dev := developer()
	unassigned := TicketRef{ClientID: "c1", AssignedDeveloperID: nil}
	mine := TicketRef{ClientID: "c1", AssignedDeveloperID: strPtr(dev.ID)}
	theirs := TicketRef{ClientID: "c1", AssignedDeveloperID: strPtr("dddd000000000099")}

	tests := []struct {
		name    string
		ticket  TicketRef
		upd     TicketUpdate
		allowed bool
	}{
		{"claims unassigned ticket", unassigned, TicketUpdate{SetsAssignee: true, AssigneeID: strPtr(dev.ID)}, true},
		{"progresses own ticket", mine, TicketUpdate{SetsStatus: true, Status: vo.StatusInProgress}, true},
		{"resolves own ticket", mine, TicketUpdate{SetsStatus: true, Status: vo.StatusResolved}, true},
		{"releases own ticket", mine, TicketUpdate{SetsAssignee: true, AssigneeID: nil}, true},
		{"cannot hand off to another developer", mine, TicketUpdate{SetsAssignee: true, AssigneeID: strPtr("dddd000000000099")}, false},
		{"cannot touch another developer's ticket", theirs, TicketUpdate{}, false},
		{"cannot steal another developer's ticket", theirs, TicketUpdate{SetsAssignee: true, AssigneeID: strPtr(dev.ID)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanUpdateTicket(dev, tt.ticket, tt.upd)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCanUpdateTicket_Admin(t *testing.T) {
	theirs := TicketRef{ClientID: "c1", AssignedDeveloperID: strPtr("dddd000000000099")}
	upd := TicketUpdate{
		SetsAssignee: true, AssigneeID: strPtr("dddd000000000001"),
		SetsStatus: true, Status: vo.StatusWaitingClient,
	}
	assert.NoError(t, CanUpdateTicket(admin(), theirs, upd))
}

func TestProjectListScope(t *testing.T) {
	s := ProjectListScope(admin())
	assert.Nil(t, s.ClientID)
	assert.False(t, s.DenyAll)

	s = ProjectListScope(client())
	if assert.NotNil(t, s.ClientID) {
		assert.Equal(t, client().ID, *s.ClientID)
	}
	assert.False(t, s.DenyAll)

	s = ProjectListScope(developer())
	assert.Nil(t, s.ClientID)
	assert.True(t, s.DenyAll)
}

func TestTicketListScope(t *testing.T) {
	s := TicketListScope(admin())
	assert.Nil(t, s.ClientID)
	assert.Nil(t, s.AssigneeOrUnassigned)

	s = TicketListScope(client())
	if assert.NotNil(t, s.ClientID) {
		assert.Equal(t, client().ID, *s.ClientID)
	}

	s = TicketListScope(developer())
	if assert.NotNil(t, s.AssigneeOrUnassigned) {
		assert.Equal(t, developer().ID, *s.AssigneeOrUnassigned)
	}
	assert.Nil(t, s.ClientID)
}
