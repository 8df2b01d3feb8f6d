package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	statuses := []string{"overdue", "due_today", "due", "healthy"}

	tests := []struct {
		name      string
		prefix    string
		want      string
		wantError bool
		errorMsg  string
	}{
		{
			name:   "exact match",
			prefix: "healthy",
			want:   "healthy",
		},
		{
			name:   "exact match case insensitive",
			prefix: "OVERDUE",
			want:   "overdue",
		},
		{
			name:   "exact match wins over longer prefix match",
			prefix: "due",
			want:   "due",
		},
		{
			name:   "unique prefix",
			prefix: "he",
			want:   "healthy",
		},
		{
			name:   "unique prefix with underscore",
			prefix: "due_",
			want:   "due_today",
		},
		{
			name:   "surrounding space ignored",
			prefix: "  ov ",
			want:   "overdue",
		},
		{
			name:      "ambiguous prefix d",
			prefix:    "d",
			wantError: true,
			errorMsg:  "ambiguous status",
		},
		{
			name:      "no match",
			prefix:    "thirsty",
			wantError: true,
			errorMsg:  "unknown status",
		},
		{
			name:      "empty prefix is ambiguous",
			prefix:    "",
			wantError: true,
			errorMsg:  "ambiguous status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Match("status", tt.prefix, statuses)

			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMatchEmptyChoices(t *testing.T) {
	_, err := Match("format", "yaml", []string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestMatchSingleChoice(t *testing.T) {
	got, err := Match("format", "y", []string{"yaml"})
	require.NoError(t, err)
	assert.Equal(t, "yaml", got)
}
