package awx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		parsed, err := ParseAction(string(a))
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}

	parsed, err := ParseAction(" create-domain ")
	require.NoError(t, err)
	assert.Equal(t, ActionCreateDomain, parsed)

	_, err = ParseAction("PURGE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CREATE, UPDATE, DELETE, CLONE, CREATE-DOMAIN")
}

func TestJobTags(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		ticket   string
		expected string
		wantErr  bool
	}{
		{name: "create with ticket", action: "CREATE", ticket: "ABC-123", expected: "CLOUDFLARE,CREATE,ABC-123"},
		{name: "update lowercase ticket", action: "update", ticket: "def-456", expected: "CLOUDFLARE,UPDATE,DEF-456"},
		{name: "delete without ticket", action: "DELETE", ticket: "  ", expected: "CLOUDFLARE,DELETE,NO-TICKET"},
		{name: "unknown action", action: "PURGE", ticket: "X", wantErr: true},
		{name: "comma in ticket", action: "CLONE", ticket: "A,B", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, err := JobTags(tt.action, tt.ticket)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tags)
		})
	}
}
