// Package sqlite provides a SQLite implementation of the RelationshipStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ersonp/relations-core/internal/domain/entities"
	"github.com/ersonp/relations-core/internal/domain/ports"
	"github.com/ersonp/relations-core/internal/infrastructure/config"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Repository implements ports.RelationshipStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Relationships (typed links between two sites)
	CREATE TABLE IF NOT EXISTS relationships (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL,
		from_site_id INTEGER NOT NULL,
		to_site_id INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_relationships_status ON relationships(status);
	CREATE INDEX IF NOT EXISTS idx_relationships_type ON relationships(type);
	CREATE INDEX IF NOT EXISTS idx_relationships_from ON relationships(from_site_id);
	CREATE INDEX IF NOT EXISTS idx_relationships_to ON relationships(to_site_id);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Get resolves a relationship by id. Returns nil without an error when the
// id does not resolve.
func (r *Repository) Get(ctx context.Context, id int64) (*entities.Relationship, error) {
	query := `
		SELECT id, name, type, from_site_id, to_site_id, status, created_at, updated_at
		FROM relationships
		WHERE id = ?
	`
	row := r.db.QueryRowContext(ctx, query, id)

	rel, err := scanRelationship(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning relationship: %w", err)
	}
	return rel, nil
}

// Create persists a new relationship and returns it with its assigned id.
func (r *Repository) Create(ctx context.Context, rel *entities.Relationship) (*entities.Relationship, error) {
	query := `
		INSERT INTO relationships (name, type, from_site_id, to_site_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		rel.Name,
		rel.Type,
		rel.FromSiteID,
		rel.ToSiteID,
		string(rel.Status),
		rel.CreatedAt,
		rel.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting relationship: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted id: %w", err)
	}

	created := *rel
	created.ID = id
	return &created, nil
}

// Update replaces the mutable attributes of an existing relationship.
func (r *Repository) Update(ctx context.Context, rel *entities.Relationship) error {
	query := `
		UPDATE relationships
		SET name = ?, type = ?, from_site_id = ?, to_site_id = ?, status = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		rel.Name,
		rel.Type,
		rel.FromSiteID,
		rel.ToSiteID,
		string(rel.Status),
		rel.UpdatedAt,
		rel.ID,
	)
	if err != nil {
		return fmt.Errorf("updating relationship: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("relationship not found: %d", rel.ID)
	}
	return nil
}

// SetStatus transitions the status of an existing relationship.
func (r *Repository) SetStatus(ctx context.Context, id int64, status entities.Status) error {
	query := `UPDATE relationships SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("setting relationship status: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("relationship not found: %d", id)
	}
	return nil
}

// Delete removes a relationship, reporting the number of rows removed.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM relationships WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("deleting relationship: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}
	return rows, nil
}

// List returns relationships matching the options, newest first.
func (r *Repository) List(ctx context.Context, opts ports.ListOptions) ([]entities.Relationship, error) {
	where, args := buildFilter(opts)

	query := fmt.Sprintf(`
		SELECT id, name, type, from_site_id, to_site_id, status, created_at, updated_at
		FROM relationships
		%s
		ORDER BY id DESC
	`, where)

	if opts.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opts.Limit, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying relationships: %w", err)
	}
	defer rows.Close()

	relationships := make([]entities.Relationship, 0, 16)
	for rows.Next() {
		rel, err := scanRelationship(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning relationship: %w", err)
		}
		relationships = append(relationships, *rel)
	}
	return relationships, rows.Err()
}

// Count returns the number of relationships matching the options, ignoring
// pagination.
func (r *Repository) Count(ctx context.Context, opts ports.ListOptions) (int, error) {
	where, args := buildFilter(opts)

	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM relationships %s`, where)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting relationships: %w", err)
	}
	return count, nil
}

// buildFilter assembles the WHERE clause shared by List and Count.
func buildFilter(opts ports.ListOptions) (string, []any) {
	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if opts.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(opts.Status))
	}
	if opts.Type != "" {
		conds = append(conds, "type = ?")
		args = append(args, opts.Type)
	}
	if opts.Search != "" {
		conds = append(conds, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(opts.Search)+"%")
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRelationship scans one relationship row.
func scanRelationship(row rowScanner) (*entities.Relationship, error) {
	var rel entities.Relationship
	var status string

	err := row.Scan(
		&rel.ID,
		&rel.Name,
		&rel.Type,
		&rel.FromSiteID,
		&rel.ToSiteID,
		&status,
		&rel.CreatedAt,
		&rel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rel.Status = entities.Status(status)
	return &rel, nil
}
