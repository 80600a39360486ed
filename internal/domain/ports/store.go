package ports

import (
	"context"

	"github.com/ersonp/relations-core/internal/domain/entities"
)

// ListOptions configures relationship listing.
type ListOptions struct {
	// Search matches against relationship names (substring, case-insensitive).
	Search string
	// Status filters by lifecycle state (empty = all).
	Status entities.Status
	// Type filters by relationship type (empty = all).
	Type string
	// Limit and Offset paginate the result.
	Limit  int
	Offset int
}

// RelationshipStore defines the persistence operations a relationship record
// must support. Individual calls are atomic; there is no cross-call
// transaction, which is why bulk admin actions may partially complete.
type RelationshipStore interface {
	// EnsureSchema creates the database schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the underlying connection.
	Close() error

	// Get resolves a live relationship by id. Returns nil (no error) when the
	// id does not resolve; callers decide how to report that.
	Get(ctx context.Context, id int64) (*entities.Relationship, error)

	// Create persists a new relationship and returns it with its assigned id.
	Create(ctx context.Context, rel *entities.Relationship) (*entities.Relationship, error)

	// Update replaces the mutable attributes of an existing relationship.
	Update(ctx context.Context, rel *entities.Relationship) error

	// SetStatus transitions the status of an existing relationship.
	SetStatus(ctx context.Context, id int64, status entities.Status) error

	// Delete removes a relationship. Reports the number of rows removed so
	// callers can distinguish a missing record from a successful delete.
	Delete(ctx context.Context, id int64) (int64, error)

	// List returns relationships matching the options, newest first.
	List(ctx context.Context, opts ListOptions) ([]entities.Relationship, error)

	// Count returns the number of relationships matching the options,
	// ignoring pagination.
	Count(ctx context.Context, opts ListOptions) (int, error)
}
