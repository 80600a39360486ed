package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/ersonp/relations-core/internal/domain/entities"
	"github.com/ersonp/relations-core/internal/domain/ports"
)

// RelationshipStore is an in-memory mock implementation of
// ports.RelationshipStore. Per-id error maps let tests fail individual
// records inside a bulk loop while the rest succeed.
type RelationshipStore struct {
	Relationships map[int64]*entities.Relationship
	NextID        int64

	// Blanket error returned by every call when set.
	Err error

	// Per-id error injection.
	SetStatusErrs map[int64]error
	DeleteErrs    map[int64]error
	UpdateErrs    map[int64]error
}

// NewRelationshipStore creates a new mock RelationshipStore.
func NewRelationshipStore() *RelationshipStore {
	return &RelationshipStore{
		Relationships: make(map[int64]*entities.Relationship),
		NextID:        1,
		SetStatusErrs: make(map[int64]error),
		DeleteErrs:    make(map[int64]error),
		UpdateErrs:    make(map[int64]error),
	}
}

// Seed inserts a relationship directly, bypassing validation.
func (m *RelationshipStore) Seed(rel *entities.Relationship) *entities.Relationship {
	if rel.ID == 0 {
		rel.ID = m.NextID
	}
	if rel.ID >= m.NextID {
		m.NextID = rel.ID + 1
	}
	m.Relationships[rel.ID] = rel
	return rel
}

// EnsureSchema creates the database schema if it doesn't exist.
func (m *RelationshipStore) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close closes the underlying connection.
func (m *RelationshipStore) Close() error {
	return nil
}

// Get resolves a live relationship by id.
func (m *RelationshipStore) Get(_ context.Context, id int64) (*entities.Relationship, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	rel, ok := m.Relationships[id]
	if !ok {
		return nil, nil
	}
	cp := *rel
	return &cp, nil
}

// Create persists a new relationship and returns it with its assigned id.
func (m *RelationshipStore) Create(_ context.Context, rel *entities.Relationship) (*entities.Relationship, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	cp := *rel
	cp.ID = m.NextID
	m.NextID++
	m.Relationships[cp.ID] = &cp
	out := cp
	return &out, nil
}

// Update replaces the mutable attributes of an existing relationship.
func (m *RelationshipStore) Update(_ context.Context, rel *entities.Relationship) error {
	if m.Err != nil {
		return m.Err
	}
	if err := m.UpdateErrs[rel.ID]; err != nil {
		return err
	}
	cp := *rel
	m.Relationships[rel.ID] = &cp
	return nil
}

// SetStatus transitions the status of an existing relationship.
func (m *RelationshipStore) SetStatus(_ context.Context, id int64, status entities.Status) error {
	if m.Err != nil {
		return m.Err
	}
	if err := m.SetStatusErrs[id]; err != nil {
		return err
	}
	if rel, ok := m.Relationships[id]; ok {
		rel.Status = status
	}
	return nil
}

// Delete removes a relationship, reporting the number of rows removed.
func (m *RelationshipStore) Delete(_ context.Context, id int64) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	if err := m.DeleteErrs[id]; err != nil {
		return 0, err
	}
	if _, ok := m.Relationships[id]; !ok {
		return 0, nil
	}
	delete(m.Relationships, id)
	return 1, nil
}

// List returns relationships matching the options, ordered by id.
func (m *RelationshipStore) List(_ context.Context, opts ports.ListOptions) ([]entities.Relationship, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	matched := m.matching(opts)
	if opts.Offset > 0 {
		if opts.Offset >= len(matched) {
			return []entities.Relationship{}, nil
		}
		matched = matched[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(matched) {
		matched = matched[:opts.Limit]
	}
	return matched, nil
}

// Count returns the number of relationships matching the options.
func (m *RelationshipStore) Count(_ context.Context, opts ports.ListOptions) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.matching(opts)), nil
}

func (m *RelationshipStore) matching(opts ports.ListOptions) []entities.Relationship {
	result := make([]entities.Relationship, 0, len(m.Relationships))
	for _, rel := range m.Relationships {
		if opts.Status != "" && rel.Status != opts.Status {
			continue
		}
		if opts.Type != "" && rel.Type != opts.Type {
			continue
		}
		if opts.Search != "" && !strings.Contains(strings.ToLower(rel.Name), strings.ToLower(opts.Search)) {
			continue
		}
		result = append(result, *rel)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
