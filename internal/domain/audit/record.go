// Package audit defines the append-only audit trail. Records are written
// once after a successful mutation and never read back for business logic.
package audit

import (
	"context"
	"time"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type EntityType string

const (
	EntityUser    EntityType = "user"
	EntityProject EntityType = "project"
	EntityTicket  EntityType = "ticket"
	EntityComment EntityType = "comment"
)

// Record captures one mutation. OldValues/NewValues are opaque snapshots
// serialized by the sink; the core never interprets them.
type Record struct {
	EntityType EntityType
	EntityID   string
	Action     Action
	ActorID    string
	OldValues  map[string]any
	NewValues  map[string]any
	CreatedAt  time.Time
}

// Sink is the write-only destination for audit records. A failed write must
// not undo the mutation it describes; callers log and continue.
type Sink interface {
	Record(ctx context.Context, rec Record) error
}
