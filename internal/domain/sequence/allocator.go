// Package sequence issues the human-readable, collision-free codes stamped
// on projects and tickets: one monotonically increasing counter per
// (type, year) pair.
package sequence

import (
	"context"
	"fmt"
)

const (
	// TypeTicket and TypeProject key the two counters the portal uses.
	TypeTicket  = "ticket"
	TypeProject = "project"

	codePrefix = "NX"
)

// Allocator hands out the next counter value for a (type, year) pair. The
// increment must be atomic at the storage layer: two concurrent calls for
// the same pair never observe the same value.
type Allocator interface {
	Next(ctx context.Context, seqType string, year int) (int, error)
}

// FormatTicketNumber renders a ticket number such as NX-2026-001. The
// counter is zero-padded to three digits and grows past 999 unpadded.
func FormatTicketNumber(year, counter int) string {
	return fmt.Sprintf("%s-%d-%03d", codePrefix, year, counter)
}

// FormatProjectCode renders a project code such as NX-WEB-2026-001.
func FormatProjectCode(typePrefix string, year, counter int) string {
	return fmt.Sprintf("%s-%s-%d-%03d", codePrefix, typePrefix, year, counter)
}
