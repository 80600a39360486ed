package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAction_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		form     url.Values
		expected string
	}{
		{
			name:     "no fields",
			form:     url.Values{},
			expected: "",
		},
		{
			name:     "primary action only",
			form:     url.Values{"action": {"edit"}},
			expected: "edit",
		},
		{
			name:     "bulk top only",
			form:     url.Values{"bulk_action": {"delete"}},
			expected: "delete",
		},
		{
			name:     "bulk bottom only",
			form:     url.Values{"bulk_action2": {"deactivate"}},
			expected: "deactivate",
		},
		{
			name:     "primary wins over bulk",
			form:     url.Values{"action": {"edit"}, "bulk_action": {"delete"}},
			expected: "edit",
		},
		{
			name: "all three populated resolves to primary",
			form: url.Values{
				"action":       {"edit"},
				"bulk_action":  {"delete"},
				"bulk_action2": {"activate"},
			},
			expected: "edit",
		},
		{
			name:     "empty primary falls through to bulk top",
			form:     url.Values{"action": {""}, "bulk_action": {"activate"}},
			expected: "activate",
		},
		{
			name:     "bulk top wins over bulk bottom",
			form:     url.Values{"bulk_action": {"activate"}, "bulk_action2": {"delete"}},
			expected: "activate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveAction(tt.form))
		})
	}
}

func TestResolveAction_Normalization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "uppercase lowered",
			input:    "Delete",
			expected: "delete",
		},
		{
			name:     "unsafe characters stripped",
			input:    "de lete!",
			expected: "delete",
		},
		{
			name:     "hyphens and underscores kept",
			input:    "my-custom_action",
			expected: "my-custom_action",
		},
		{
			name:     "only unsafe characters resolves to nothing",
			input:    "!!!",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{"action": {tt.input}}
			assert.Equal(t, tt.expected, ResolveAction(form))
		})
	}
}
