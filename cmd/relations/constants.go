package main

import "github.com/ersonp/relations-core/internal/domain/entities"

// Default limits for CLI commands.
const (
	DefaultListLimit = 50
)

// Valid relationship statuses, for help text.
var validStatuses = []string{
	string(entities.StatusActive),
	string(entities.StatusInactive),
}
