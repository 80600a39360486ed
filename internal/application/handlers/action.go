// Package handlers implements the admin action engine: resolving the
// requested action, sanitizing target ids, running single and bulk
// operations against the relationship service, and encoding the outcome as
// a redirect the list page can render a notice from.
package handlers

import (
	"net/url"
	"strings"
)

// Admin action symbols.
const (
	ActionActivate   = "activate"
	ActionDeactivate = "deactivate"
	ActionDelete     = "delete"
	ActionAdd        = "add"
	ActionEdit       = "edit"
)

// Nonce scopes. Bulk actions share one scope; the single-record actions each
// have their own.
const (
	NonceBulk = "relationships-bulk"
	NonceAdd  = "relationship_add"
	NonceEdit = "relationship_edit"
)

// Form field names consumed by the engine.
const (
	FieldAction      = "action"
	FieldBulkAction  = "bulk_action"
	FieldBulkAction2 = "bulk_action2"
	FieldID          = "relationship_id"
	FieldIDs         = "relationship_ids"
	FieldToken       = "_token"
)

// ResolveAction inspects the request fields in fixed precedence and returns
// the first non-empty action, normalized to a lowercase key. The primary
// action field wins over the two bulk selectors (the list page renders one
// above and one below the table). Returns "" when no action is requested.
func ResolveAction(form url.Values) string {
	for _, field := range []string{FieldAction, FieldBulkAction, FieldBulkAction2} {
		if action := sanitizeKey(form.Get(field)); action != "" {
			return action
		}
	}
	return ""
}

// sanitizeKey lowercases the value and strips everything that isn't
// alphanumeric, underscore, or hyphen.
func sanitizeKey(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
