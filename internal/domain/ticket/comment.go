package ticket

import (
	"fmt"
	"time"
)

// Comment is an append-only entry on a ticket, ordered by creation time.
type Comment struct {
	id        string
	ticketID  string
	userID    string
	content   string
	createdAt time.Time
}

func NewComment(id, ticketID, userID, content string) (*Comment, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("comment ID is required")
	}
	if len(ticketID) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		content:   content,
		createdAt: time.Now(),
	}, nil
}

func ReconstructComment(id, ticketID, userID, content string, createdAt time.Time) (*Comment, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("comment ID is required")
	}
	return &Comment{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		content:   content,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() string           { return c.id }
func (c *Comment) TicketID() string     { return c.ticketID }
func (c *Comment) UserID() string       { return c.userID }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
