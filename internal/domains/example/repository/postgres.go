package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"template-backend/internal/domains/example"
)

// Querier is the subset of pgxpool.Pool the repository needs.
// Both *pgxpool.Pool and the pgxmock pool satisfy it, so the same
// implementation runs against a live database and in unit tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// postgresRepository implements example.Repository on PostgreSQL
// Timestamps are database-assigned (DEFAULT NOW() on insert, explicit
// NOW() on update) so every node agrees on them.
type postgresRepository struct {
	db Querier
}

// NewPostgresRepository creates a new example repository instance
// Dependency injection pattern - receives the pool from the container
func NewPostgresRepository(db Querier) example.Repository {
	return &postgresRepository{db: db}
}

// List retrieves one page in default order plus the total count
func (r *postgresRepository) List(ctx context.Context, offset, limit int) ([]example.Example, int64, error) {
	query := `
        SELECT id, name, description, is_active, created_at, updated_at
        FROM examples
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query examples: %w", err)
	}
	defer rows.Close()

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
			return nil, 0, fmt.Errorf("failed to scan example: %w", err)
		}
		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating examples: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM examples`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count examples: %w", err)
	}

	return items, total, nil
}

// Create inserts a new example item with generated ID and timestamps
func (r *postgresRepository) Create(ctx context.Context, item *example.Example) (*example.Example, error) {
	query := `
        INSERT INTO examples (name, description, is_active)
        VALUES ($1, $2, $3)
        RETURNING id, name, description, is_active, created_at, updated_at
    `

	created, err := scanExample(r.db.QueryRow(ctx, query, item.Name, item.Description, item.IsActive))
	if err != nil {
		return nil, fmt.Errorf("failed to create example: %w", err)
	}

	return created, nil
}

// GetByID retrieves an example item by UUID
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*example.Example, error) {
	query := `
        SELECT id, name, description, is_active, created_at, updated_at
        FROM examples
        WHERE id = $1
    `

	item, err := scanExample(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, example.ErrExampleNotFound
		}
		return nil, fmt.Errorf("failed to get example by id: %w", err)
	}

	return item, nil
}

// Update persists the merged record and refreshes updated_at
func (r *postgresRepository) Update(ctx context.Context, item *example.Example) (*example.Example, error) {
	query := `
        UPDATE examples
        SET
            name = $1,
            description = $2,
            is_active = $3,
            updated_at = NOW()
        WHERE id = $4
        RETURNING id, name, description, is_active, created_at, updated_at
    `

	updated, err := scanExample(r.db.QueryRow(ctx, query, item.Name, item.Description, item.IsActive, item.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, example.ErrExampleNotFound
		}
		return nil, fmt.Errorf("failed to update example: %w", err)
	}

	return updated, nil
}

// Delete removes an example item by ID
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM examples WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete example: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return example.ErrExampleNotFound
	}

	return nil
}

// Search retrieves a filtered page for the admin listing
func (r *postgresRepository) Search(ctx context.Context, filter example.ExampleFilter) ([]example.Example, int64, error) {
	// Build dynamic query
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT id, name, description, is_active, created_at, updated_at
        FROM examples
        WHERE 1=1
    `)

	args := []interface{}{}
	argPos := 1

	// Add search filter if provided
	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		argPos++
	}

	// Add status filter if provided
	if filter.IsActive != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND is_active = $%d", argPos))
		args = append(args, *filter.IsActive)
		argPos++
	}

	// Add sorting
	sortColumn := "created_at" // default
	switch filter.SortBy {
	case "name":
		sortColumn = "name"
	case "updated_at":
		sortColumn = "updated_at"
	}

	sortOrder := "DESC" // default
	if filter.Order == "asc" {
		sortOrder = "ASC"
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s", sortColumn, sortOrder))

	// Add pagination
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search examples: %w", err)
	}
	defer rows.Close()

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
			return nil, 0, fmt.Errorf("failed to scan example: %w", err)
		}
		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating search results: %w", err)
	}

	// Get total count with the same filters
	countQuery := `SELECT COUNT(*) FROM examples WHERE 1=1`
	countArgs := []interface{}{}
	countArgPos := 1

	if filter.Search != "" {
		countQuery += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", countArgPos, countArgPos)
		countArgs = append(countArgs, "%"+escapeLike(filter.Search)+"%")
		countArgPos++
	}
	if filter.IsActive != nil {
		countQuery += fmt.Sprintf(" AND is_active = $%d", countArgPos)
		countArgs = append(countArgs, *filter.IsActive)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	return items, total, nil
}

// scanExample scans a single example row. Centralising the scan means
// adding a column only requires a change in one place.
func scanExample(row pgx.Row) (*example.Example, error) {
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

// escapeLike escapes LIKE/ILIKE wildcards in user-supplied search terms
// so they match literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
