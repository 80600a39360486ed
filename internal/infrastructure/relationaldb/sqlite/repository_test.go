package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/relations-core/internal/domain/entities"
	"github.com/ersonp/relations-core/internal/domain/ports"
	"github.com/ersonp/relations-core/internal/infrastructure/config"
)

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(config.SQLiteConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	err = repo.EnsureSchema(context.Background())
	require.NoError(t, err)

	return repo
}

func createTestRelationship(t *testing.T, repo *Repository, name, rtype string, from, to int64, status entities.Status) *entities.Relationship {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	rel, err := repo.Create(context.Background(), &entities.Relationship{
		Name:       name,
		Type:       rtype,
		FromSiteID: from,
		ToSiteID:   to,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)
	return rel
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(config.SQLiteConfig{Path: ":memory:"})
		require.NoError(t, err)
		defer repo.Close()
		assert.NotNil(t, repo)
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository(config.SQLiteConfig{Path: ""})
		require.Error(t, err)
	})
}

func TestRepository_EnsureSchema_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.EnsureSchema(context.Background())
	require.NoError(t, err)
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := setupTestRepo(t)

	created := createTestRelationship(t, repo, "news feed", "syndication", 3, 7, entities.StatusActive)
	assert.NotZero(t, created.ID)

	got, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "news feed", got.Name)
	assert.Equal(t, "syndication", got.Type)
	assert.Equal(t, int64(3), got.FromSiteID)
	assert.Equal(t, int64(7), got.ToSiteID)
	assert.Equal(t, entities.StatusActive, got.Status)
}

func TestRepository_Create_AssignsIncreasingIDs(t *testing.T) {
	repo := setupTestRepo(t)

	first := createTestRelationship(t, repo, "a", "mirror", 1, 2, entities.StatusActive)
	second := createTestRelationship(t, repo, "b", "mirror", 3, 4, entities.StatusActive)
	assert.Greater(t, second.ID, first.ID)
}

func TestRepository_Get_Unknown(t *testing.T) {
	repo := setupTestRepo(t)

	got, err := repo.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_Update(t *testing.T) {
	repo := setupTestRepo(t)
	created := createTestRelationship(t, repo, "old", "mirror", 1, 2, entities.StatusActive)

	created.Name = "new"
	created.Type = "syndication"
	created.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	err := repo.Update(context.Background(), created)
	require.NoError(t, err)

	got, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)
	assert.Equal(t, "syndication", got.Type)
}

func TestRepository_Update_Unknown(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.Update(context.Background(), &entities.Relationship{
		ID:   99,
		Type: "mirror",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRepository_SetStatus(t *testing.T) {
	repo := setupTestRepo(t)
	created := createTestRelationship(t, repo, "a", "mirror", 1, 2, entities.StatusActive)

	err := repo.SetStatus(context.Background(), created.ID, entities.StatusInactive)
	require.NoError(t, err)

	got, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusInactive, got.Status)
}

func TestRepository_SetStatus_Unknown(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.SetStatus(context.Background(), 99, entities.StatusActive)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRepository_Delete(t *testing.T) {
	repo := setupTestRepo(t)
	created := createTestRelationship(t, repo, "a", "mirror", 1, 2, entities.StatusActive)

	removed, err := repo.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	got, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Second delete removes nothing.
	removed, err = repo.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestRepository_List(t *testing.T) {
	repo := setupTestRepo(t)
	createTestRelationship(t, repo, "alpha feed", "syndication", 1, 2, entities.StatusActive)
	createTestRelationship(t, repo, "beta mirror", "mirror", 3, 4, entities.StatusInactive)
	createTestRelationship(t, repo, "gamma feed", "syndication", 5, 6, entities.StatusInactive)

	t.Run("all newest first", func(t *testing.T) {
		rels, err := repo.List(context.Background(), ports.ListOptions{})
		require.NoError(t, err)
		require.Len(t, rels, 3)
		assert.Equal(t, "gamma feed", rels[0].Name)
		assert.Equal(t, "alpha feed", rels[2].Name)
	})

	t.Run("filter by status", func(t *testing.T) {
		rels, err := repo.List(context.Background(), ports.ListOptions{Status: entities.StatusInactive})
		require.NoError(t, err)
		assert.Len(t, rels, 2)
	})

	t.Run("filter by type", func(t *testing.T) {
		rels, err := repo.List(context.Background(), ports.ListOptions{Type: "mirror"})
		require.NoError(t, err)
		require.Len(t, rels, 1)
		assert.Equal(t, "beta mirror", rels[0].Name)
	})

	t.Run("search by name", func(t *testing.T) {
		rels, err := repo.List(context.Background(), ports.ListOptions{Search: "FEED"})
		require.NoError(t, err)
		assert.Len(t, rels, 2)
	})

	t.Run("pagination", func(t *testing.T) {
		rels, err := repo.List(context.Background(), ports.ListOptions{Limit: 2, Offset: 2})
		require.NoError(t, err)
		require.Len(t, rels, 1)
		assert.Equal(t, "alpha feed", rels[0].Name)
	})
}

func TestRepository_Count(t *testing.T) {
	repo := setupTestRepo(t)
	createTestRelationship(t, repo, "a", "mirror", 1, 2, entities.StatusActive)
	createTestRelationship(t, repo, "b", "mirror", 3, 4, entities.StatusInactive)

	count, err := repo.Count(context.Background(), ports.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.Count(context.Background(), ports.ListOptions{Status: entities.StatusActive, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, count, "count ignores pagination")
}
