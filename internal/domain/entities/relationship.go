package entities

import "time"

// Status is the lifecycle state of a relationship.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether the status is one of the enumerated values.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Relationship represents a named, typed link between two sites in a
// multi-site installation. The ID is assigned by the store at creation and
// never changes; Status only ever changes through the service's SetStatus.
type Relationship struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	FromSiteID int64     `json:"from_site_id"`
	ToSiteID   int64     `json:"to_site_id"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RelationshipParams carries the mutable attributes submitted on create and
// edit forms. Status is optional on create; an empty value means active.
type RelationshipParams struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	FromSiteID int64  `json:"from_site_id"`
	ToSiteID   int64  `json:"to_site_id"`
	Status     Status `json:"status"`
}
