package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"template-backend/internal/domains/example"
)

// sqliteRepository implements example.Repository on SQLite via
// database/sql. It is the development and test backend: no external
// services required, ":memory:" works out of the box.
//
// Unlike the PostgreSQL implementation, ids and timestamps are assigned
// application-side (SQLite has no gen_random_uuid, and NOW() semantics
// differ), always in UTC.
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates an example repository backed by db.
// Call EnsureSchema before first use.
func NewSQLiteRepository(db *sql.DB) example.Repository {
	return &sqliteRepository{db: db}
}

// sqliteSchema is the development-backend table layout. It mirrors the
// PostgreSQL schema documented on the Example model.
const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS examples (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		is_active   BOOLEAN NOT NULL DEFAULT 1,
		created_at  DATETIME NOT NULL,
		updated_at  DATETIME NOT NULL
	)`

// EnsureSchema creates the examples table if it does not exist yet.
// The container runs this once at startup for the sqlite backend;
// tests run it against ":memory:" databases.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("failed to ensure examples schema: %w", err)
	}
	return nil
}

const (
	sqlInsertExample = `
		INSERT INTO examples (id, name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, name, description, is_active, created_at, updated_at`

	sqlGetExampleByID = `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM   examples
		WHERE  id = $1
		LIMIT  1`

	// rowid breaks created_at ties so pages stay in insertion order
	sqlListExamples = `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM   examples
		ORDER  BY created_at DESC, rowid DESC
		LIMIT  $1 OFFSET $2`

	sqlUpdateExample = `
		UPDATE examples
		SET    name = $1, description = $2, is_active = $3, updated_at = $4
		WHERE  id = $5
		RETURNING id, name, description, is_active, created_at, updated_at`

	sqlDeleteExample = `
		DELETE FROM examples WHERE id = $1`

	sqlCountExamples = `
		SELECT COUNT(*) FROM examples`
)

// List retrieves one page in default order plus the total count
func (r *sqliteRepository) List(ctx context.Context, offset, limit int) ([]example.Example, int64, error) {
	rows, err := r.db.QueryContext(ctx, sqlListExamples, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query examples: %w", err)
	}
	defer rows.Close()

	items, err := collectExamples(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, sqlCountExamples).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count examples: %w", err)
	}

	return items, total, nil
}

// Create inserts a new example item with generated ID and timestamps
func (r *sqliteRepository) Create(ctx context.Context, item *example.Example) (*example.Example, error) {
	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, sqlInsertExample,
		uuid.New().String(),
		item.Name,
		item.Description,
		item.IsActive,
		now,
	)

	created, err := scanExampleRow(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create example: %w", err)
	}

	return created, nil
}

// GetByID retrieves an example item by UUID
func (r *sqliteRepository) GetByID(ctx context.Context, id uuid.UUID) (*example.Example, error) {
	item, err := scanExampleRow(r.db.QueryRowContext(ctx, sqlGetExampleByID, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, example.ErrExampleNotFound
		}
		return nil, fmt.Errorf("failed to get example by id: %w", err)
	}

	return item, nil
}

// Update persists the merged record and refreshes updated_at
func (r *sqliteRepository) Update(ctx context.Context, item *example.Example) (*example.Example, error) {
	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, sqlUpdateExample,
		item.Name,
		item.Description,
		item.IsActive,
		now,
		item.ID.String(),
	)

	updated, err := scanExampleRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, example.ErrExampleNotFound
		}
		return nil, fmt.Errorf("failed to update example: %w", err)
	}

	return updated, nil
}

// Delete removes an example item by ID
func (r *sqliteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, sqlDeleteExample, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete example: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return example.ErrExampleNotFound
	}

	return nil
}

// Search retrieves a filtered page for the admin listing.
// SQLite LIKE is case-insensitive for ASCII, matching ILIKE closely
// enough for the admin search.
func (r *sqliteRepository) Search(ctx context.Context, filter example.ExampleFilter) ([]example.Example, int64, error) {
	where := "1=1"
	args := []any{}
	argPos := 1

	if filter.Search != "" {
		where += fmt.Sprintf(" AND (name LIKE $%d ESCAPE '\\' OR description LIKE $%d ESCAPE '\\')", argPos, argPos)
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		argPos++
	}
	if filter.IsActive != nil {
		where += fmt.Sprintf(" AND is_active = $%d", argPos)
		args = append(args, *filter.IsActive)
		argPos++
	}

	sortColumn := "created_at"
	switch filter.SortBy {
	case "name":
		sortColumn = "name"
	case "updated_at":
		sortColumn = "updated_at"
	}

	sortOrder := "DESC"
	if filter.Order == "asc" {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT id, name, description, is_active, created_at, updated_at
		FROM   examples
		WHERE  %s
		ORDER  BY %s %s, rowid DESC
		LIMIT  $%d OFFSET $%d`,
		where, sortColumn, sortOrder, argPos, argPos+1)

	rows, err := r.db.QueryContext(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search examples: %w", err)
	}
	defer rows.Close()

	items, err := collectExamples(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery := "SELECT COUNT(*) FROM examples WHERE " + where

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	return items, total, nil
}

// scanExampleRow scans a single example row from a QueryRow result.
// uuid.UUID implements sql.Scanner, so the TEXT id column scans directly.
func scanExampleRow(row *sql.Row) (*example.Example, error) {
	var e example.Example
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// collectExamples drains a multi-row result set
func collectExamples(rows *sql.Rows) ([]example.Example, error) {
	var items []example.Example
	for rows.Next() {
		var e example.Example
		err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Description,
			&e.IsActive,
			&e.CreatedAt,
			&e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan example: %w", err)
		}
		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating examples: %w", err)
	}

	return items, nil
}

var (
	_ example.Repository = (*sqliteRepository)(nil)
	_ example.Repository = (*postgresRepository)(nil)
)
