package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTicketNumber(t *testing.T) {
	assert.Equal(t, "NX-2026-001", FormatTicketNumber(2026, 1))
	assert.Equal(t, "NX-2026-042", FormatTicketNumber(2026, 42))
	assert.Equal(t, "NX-2026-999", FormatTicketNumber(2026, 999))
	// counters past 999 are not truncated
	assert.Equal(t, "NX-2026-1000", FormatTicketNumber(2026, 1000))
}

func TestFormatProjectCode(t *testing.T) {
	assert.Equal(t, "NX-WEB-2026-001", FormatProjectCode("WEB", 2026, 1))
	assert.Equal(t, "NX-MOB-2026-017", FormatProjectCode("MOB", 2026, 17))
	assert.Equal(t, "NX-PRJ-2026-003", FormatProjectCode("PRJ", 2026, 3))
}
