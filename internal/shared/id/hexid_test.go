package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntityID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := NewEntityID()
		require.NoError(t, err)
		assert.Len(t, id, EntityIDLength)
		for _, c := range id {
			assert.Contains(t, alphabet, string(c))
		}
		assert.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}

func TestNewAccountCode(t *testing.T) {
	tests := []struct {
		role   string
		prefix string
	}{
		{"client", "user-"},
		{"developer", "dev-"},
		{"admin", "admin-"},
		{"something_else", "user-"},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			code, err := NewAccountCode(tt.role)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(code, tt.prefix))
			assert.Len(t, code, len(tt.prefix)+accountSuffixLength)
		})
	}
}
