package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ersonp/relations-core/internal/domain/entities"
	"github.com/ersonp/relations-core/internal/domain/ports"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// RelationshipService implements the relationship lifecycle contract on top
// of a RelationshipStore. Every failure it returns is a typed
// RelationshipError whose code is what the admin redirect ultimately reports.
type RelationshipService struct {
	store ports.RelationshipStore
}

// NewRelationshipService creates a new RelationshipService.
func NewRelationshipService(store ports.RelationshipStore) *RelationshipService {
	return &RelationshipService{store: store}
}

// Lookup resolves a live relationship by id. An unknown or deleted id is a
// not_found error, never an empty record.
func (s *RelationshipService) Lookup(ctx context.Context, id int64) (*entities.Relationship, error) {
	if id <= 0 {
		return nil, entities.NewError(entities.ErrNotFound, fmt.Sprintf("invalid relationship id %d", id))
	}
	rel, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, entities.WrapError(entities.ErrNotFound, fmt.Sprintf("looking up relationship %d", id), err)
	}
	if rel == nil {
		return nil, entities.NewError(entities.ErrNotFound, fmt.Sprintf("relationship %d not found", id))
	}
	return rel, nil
}

// Create validates the submitted attributes and persists a new relationship.
// Status defaults to active when the payload doesn't specify one.
func (s *RelationshipService) Create(ctx context.Context, params entities.RelationshipParams) (*entities.Relationship, error) {
	if err := validateParams(params, entities.ErrCreateFailed); err != nil {
		return nil, err
	}

	status := params.Status
	if status == "" {
		status = entities.StatusActive
	}
	if !status.Valid() {
		return nil, entities.NewError(entities.ErrInvalidStatus, fmt.Sprintf("unknown status %q", params.Status))
	}

	now := timeNow()
	rel := &entities.Relationship{
		Name:       params.Name,
		Type:       params.Type,
		FromSiteID: params.FromSiteID,
		ToSiteID:   params.ToSiteID,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.store.Create(ctx, rel)
	if err != nil {
		return nil, entities.WrapError(entities.ErrCreateFailed, "creating relationship", err)
	}
	return created, nil
}

// Update performs a full replace of the mutable attributes of an existing
// relationship. Status is deliberately not part of an update; transitions
// only ever happen through SetStatus.
func (s *RelationshipService) Update(ctx context.Context, id int64, params entities.RelationshipParams) (*entities.Relationship, error) {
	rel, err := s.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateParams(params, entities.ErrUpdateFailed); err != nil {
		return nil, err
	}

	rel.Name = params.Name
	rel.Type = params.Type
	rel.FromSiteID = params.FromSiteID
	rel.ToSiteID = params.ToSiteID
	rel.UpdatedAt = timeNow()

	if err := s.store.Update(ctx, rel); err != nil {
		return nil, entities.WrapError(entities.ErrUpdateFailed, fmt.Sprintf("updating relationship %d", id), err)
	}
	return rel, nil
}

// SetStatus transitions the status of an existing relationship. Setting the
// status a record already has succeeds and leaves it unchanged.
func (s *RelationshipService) SetStatus(ctx context.Context, id int64, status entities.Status) (*entities.Relationship, error) {
	if !status.Valid() {
		return nil, entities.NewError(entities.ErrInvalidStatus, fmt.Sprintf("unknown status %q", status))
	}
	rel, err := s.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetStatus(ctx, id, status); err != nil {
		return nil, entities.WrapError(entities.ErrUpdateFailed, fmt.Sprintf("setting status of relationship %d", id), err)
	}
	rel.Status = status
	return rel, nil
}

// Delete removes a relationship and returns the record that was removed.
// Deleting an id that no longer resolves is a not_found error, not success.
func (s *RelationshipService) Delete(ctx context.Context, id int64) (*entities.Relationship, error) {
	rel, err := s.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, entities.WrapError(entities.ErrDeleteFailed, fmt.Sprintf("deleting relationship %d", id), err)
	}
	if removed == 0 {
		return nil, entities.NewError(entities.ErrNotFound, fmt.Sprintf("relationship %d not found", id))
	}
	return rel, nil
}

// List returns relationships matching the options.
func (s *RelationshipService) List(ctx context.Context, opts ports.ListOptions) ([]entities.Relationship, error) {
	rels, err := s.store.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("listing relationships: %w", err)
	}
	return rels, nil
}

// Count returns the number of relationships matching the options.
func (s *RelationshipService) Count(ctx context.Context, opts ports.ListOptions) (int, error) {
	count, err := s.store.Count(ctx, opts)
	if err != nil {
		return 0, fmt.Errorf("counting relationships: %w", err)
	}
	return count, nil
}

// validateParams checks the required-field invariants shared by create and
// update, reporting failures under the given operation code.
func validateParams(params entities.RelationshipParams, code entities.ErrorCode) error {
	if params.Type == "" {
		return entities.NewError(code, "relationship type is required")
	}
	if params.FromSiteID <= 0 {
		return entities.NewError(code, "from site id is required")
	}
	if params.ToSiteID <= 0 {
		return entities.NewError(code, "to site id is required")
	}
	if params.FromSiteID == params.ToSiteID {
		return entities.NewError(code, "a site cannot be related to itself")
	}
	return nil
}
