// Package access is the portal's authorization policy engine. Every mutating
// request is checked here before a repository is touched.
//
// The rules have two independent dimensions that must not be conflated:
// the role ranking (client < developer < admin), used only for minimum-role
// gates, and the ownership/assignment rules below, which depend on the
// concrete resource being targeted.
package access

import (
	vo "github.com/nexorbs/nexportal/internal/domain/ticket/valueobjects"
	"github.com/nexorbs/nexportal/internal/shared/authorization"
	"github.com/nexorbs/nexportal/internal/shared/errors"
)

// Actor is the authenticated identity a decision is made for.
type Actor struct {
	ID   string
	Role authorization.Role
}

// ProjectRef is the slice of project state the policy needs.
type ProjectRef struct {
	ClientID string
}

// TicketRef is the slice of ticket state the policy needs.
type TicketRef struct {
	ClientID            string
	AssignedDeveloperID *string
}

// TicketUpdate describes the aspects of a requested ticket mutation the
// policy gates on. Fields not being set are simply absent.
type TicketUpdate struct {
	SetsAssignee bool
	AssigneeID   *string // nil means unassign when SetsAssignee is true
	SetsStatus   bool
	Status       vo.TicketStatus
}

// clientAllowedStatuses are the only status values a client may set. A
// client opens and closes their own tickets; every intermediate state is
// driven by developers or admins.
var clientAllowedStatuses = map[vo.TicketStatus]bool{
	vo.StatusOpen:   true,
	vo.StatusClosed: true,
}

// developerProjectAccess is the single rule gating developer access to
// projects. Currently a full deny, pending ticket-derived project
// visibility; relaxing it should not require touching anything else.
func developerProjectAccess() bool {
	return false
}

// CanViewProject decides read access to a single project.
func CanViewProject(actor Actor, p ProjectRef) error {
	switch {
	case actor.Role.IsAdmin():
		return nil
	case actor.Role.IsClient():
		if p.ClientID != actor.ID {
			return errors.NewAuthorizationError("you can only view your own projects")
		}
		return nil
	case actor.Role.IsDeveloper():
		if !developerProjectAccess() {
			return errors.NewAuthorizationError("developers do not have project access")
		}
		return nil
	}
	return errors.NewAuthorizationError("unknown role")
}

// CanMutateProject decides create/update/delete on projects: admin only.
func CanMutateProject(actor Actor) error {
	if !actor.Role.IsAdmin() {
		return errors.NewAuthorizationError("only administrators can manage projects")
	}
	return nil
}

// CanManageUsers decides user create/update/list: admin only.
func CanManageUsers(actor Actor) error {
	if !actor.Role.IsAdmin() {
		return errors.NewAuthorizationError("only administrators can manage users")
	}
	return nil
}

// CanCreateTicket decides whether the actor may open a ticket under the
// given project. Clients only file tickets against projects they own;
// developers and admins may file against any project.
func CanCreateTicket(actor Actor, p ProjectRef) error {
	if actor.Role.IsClient() && p.ClientID != actor.ID {
		return errors.NewAuthorizationError("you can only create tickets in your own projects")
	}
	return nil
}

// CanViewTicket decides read access to a single ticket.
func CanViewTicket(actor Actor, t TicketRef) error {
	switch {
	case actor.Role.IsAdmin():
		return nil
	case actor.Role.IsClient():
		if t.ClientID != actor.ID {
			return errors.NewAuthorizationError("you do not have permission to view this ticket")
		}
		return nil
	case actor.Role.IsDeveloper():
		if t.AssignedDeveloperID != nil && *t.AssignedDeveloperID != actor.ID {
			return errors.NewAuthorizationError("you can only view tickets assigned to you or unassigned")
		}
		return nil
	}
	return errors.NewAuthorizationError("unknown role")
}

// CanUpdateTicket decides whether the actor may apply the requested changes
// to the ticket. The status value itself must already be enum-valid; that
// is a validation concern checked before authorization.
func CanUpdateTicket(actor Actor, t TicketRef, upd TicketUpdate) error {
	switch {
	case actor.Role.IsAdmin():
		return nil

	case actor.Role.IsClient():
		if t.ClientID != actor.ID {
			return errors.NewAuthorizationError("you can only edit your own tickets")
		}
		if upd.SetsAssignee {
			return errors.NewAuthorizationError("you do not have permission to assign tickets")
		}
		if upd.SetsStatus && !clientAllowedStatuses[upd.Status] {
			return errors.NewAuthorizationError("you can only set the status to open or closed")
		}
		return nil

	case actor.Role.IsDeveloper():
		// A ticket claimed by another developer is off limits entirely.
		if t.AssignedDeveloperID != nil && *t.AssignedDeveloperID != actor.ID {
			return errors.NewAuthorizationError("you can only edit tickets assigned to you")
		}
		// Self-claim semantics: a developer assigns to themself or unassigns,
		// never to a third party.
		if upd.SetsAssignee && upd.AssigneeID != nil && *upd.AssigneeID != actor.ID {
			return errors.NewAuthorizationError("you cannot assign tickets to other developers")
		}
		return nil
	}
	return errors.NewAuthorizationError("unknown role")
}

// CanCommentOnTicket mirrors view access: whoever can see a ticket can
// append a comment to it.
func CanCommentOnTicket(actor Actor, t TicketRef) error {
	return CanViewTicket(actor, t)
}

// ProjectScope is the ownership restriction a project listing runs under.
// Exactly one of the narrowing fields is set for non-admin roles.
type ProjectScope struct {
	// ClientID restricts the listing to projects owned by that client.
	ClientID *string
	// DenyAll short-circuits the query to an empty result set.
	DenyAll bool
}

// ProjectListScope returns the restriction the actor's role imposes on
// project listings. Admins see everything; clients see their own projects;
// developers see none.
func ProjectListScope(actor Actor) ProjectScope {
	switch {
	case actor.Role.IsClient():
		id := actor.ID
		return ProjectScope{ClientID: &id}
	case actor.Role.IsDeveloper():
		return ProjectScope{DenyAll: !developerProjectAccess()}
	}
	return ProjectScope{}
}

// TicketScope is the ownership restriction a ticket listing runs under.
type TicketScope struct {
	// ClientID restricts the listing to tickets owned by that client.
	ClientID *string
	// AssigneeOrUnassigned restricts to tickets assigned to that developer
	// or not yet claimed by anyone.
	AssigneeOrUnassigned *string
}

// TicketListScope returns the restriction the actor's role imposes on
// ticket listings. Explicit query filters stack on top of it.
func TicketListScope(actor Actor) TicketScope {
	switch {
	case actor.Role.IsClient():
		id := actor.ID
		return TicketScope{ClientID: &id}
	case actor.Role.IsDeveloper():
		id := actor.ID
		return TicketScope{AssigneeOrUnassigned: &id}
	}
	return TicketScope{}
}
