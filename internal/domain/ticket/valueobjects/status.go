package valueobjects

import "fmt"

// TicketStatus is the closed set of workflow states. Which actor may move a
// ticket into which state is decided by the access policy, not here; this
// type only answers whether a value belongs to the enum at all.
type TicketStatus string

const (
	StatusOpen           TicketStatus = "open"
	StatusAssigned       TicketStatus = "assigned"
	StatusInProgress     TicketStatus = "in_progress"
	StatusWaitingClient  TicketStatus = "waiting_client"
	StatusResolved       TicketStatus = "resolved"
	StatusClientApproved TicketStatus = "client_approved"
	StatusClosed         TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:           true,
	StatusAssigned:       true,
	StatusInProgress:     true,
	StatusWaitingClient:  true,
	StatusResolved:       true,
	StatusClientApproved: true,
	StatusClosed:         true,
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	return validTicketStatuses[s]
}

func (s TicketStatus) IsResolved() bool {
	return s == StatusResolved
}

func (s TicketStatus) IsClosed() bool {
	return s == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}
