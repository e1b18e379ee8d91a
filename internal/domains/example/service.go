package example

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the Example domain
// This interface abstracts away implementation details and allows:
// 1. Easy mocking in tests
// 2. Multiple implementations (e.g., logging decorator)
// 3. Clear separation between business logic and data access
type Service interface {
	// List retrieves one page of example items
	// Business rules:
	// - Pages are 1-indexed; page < 1 is treated as page 1
	// - Page size is fixed by configuration (default 20)
	// - Default sort: created_at DESC
	// Returns: items slice + total count for pagination
	List(ctx context.Context, page, pageSize int) ([]Example, int64, error)

	// Create validates and persists a new example item
	// Business rules:
	// - name required, 1-255 chars after trimming
	// - description defaults to "" when omitted
	// - is_active defaults to true when omitted
	// Returns: created item with ID and timestamps
	// Errors: validation.Errors on invalid input (nothing is persisted)
	Create(ctx context.Context, req *CreateExampleRequest) (*Example, error)

	// GetByID retrieves an example item by UUID
	// Errors: ErrExampleNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Example, error)

	// Update applies a partial update to an existing item
	// Business rules:
	// - Existence is checked BEFORE payload validation, so a missing
	//   id reports not-found even when the payload is invalid
	// - Only non-nil fields overwrite the stored record
	// - updated_at is refreshed on every successful update
	// Returns: updated item as stored
	// Errors: ErrExampleNotFound, validation.Errors
	Update(ctx context.Context, id uuid.UUID, req *UpdateExampleRequest) (*Example, error)

	// Delete removes an example item (hard delete)
	// Errors: ErrExampleNotFound when the id does not exist; deletion
	// is never silently skipped
	Delete(ctx context.Context, id uuid.UUID) error

	// Search retrieves a filtered page for the admin listing
	// Business rules:
	// - Defaults: page 1, limit 20, sort created_at desc
	// - Search is a case-insensitive substring match on name/description
	// Returns: items slice + total count matching the filter
	// Errors: validation.Errors on invalid filter parameters
	Search(ctx context.Context, req *SearchExamplesRequest) ([]Example, int64, error)
}
