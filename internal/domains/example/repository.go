package example

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for Example data access operations
// This abstraction allows:
// 1. Easy testing via mocking
// 2. Swapping database implementations (PostgreSQL in production,
//    SQLite in development and tests)
// 3. Clear separation of concerns
type Repository interface {
	// List retrieves one page of example items in default order
	// (created_at descending, newest first) together with the total
	// count across all records.
	// Returns: items slice + total count for pagination
	List(ctx context.Context, offset, limit int) ([]Example, int64, error)

	// Create inserts a new example item
	// The store assigns the ID and both timestamps
	// Returns: created item with ID, created_at, updated_at
	Create(ctx context.Context, item *Example) (*Example, error)

	// GetByID retrieves an example item by UUID
	// Returns: ErrExampleNotFound if not exists
	GetByID(ctx context.Context, id uuid.UUID) (*Example, error)

	// Update persists the full (already merged) record and refreshes
	// updated_at. created_at is never touched.
	// Returns: updated item as stored
	// Errors: ErrExampleNotFound if the row no longer exists
	Update(ctx context.Context, item *Example) (*Example, error)

	// Delete removes an example item by ID (hard delete)
	// Returns: ErrExampleNotFound if not exists
	Delete(ctx context.Context, id uuid.UUID) error

	// Search retrieves a filtered page for the admin listing
	// Supports: case-insensitive substring match on name/description,
	// is_active filter, sorting
	// Returns: items slice + total count matching the filter
	Search(ctx context.Context, filter ExampleFilter) ([]Example, int64, error)
}
