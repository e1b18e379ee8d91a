package example

import (
	"time"

	"github.com/google/uuid"
)

// Example represents the core Example entity
// This is the domain model, independent of database/API concerns
//
// Table layout (PostgreSQL):
//
//	CREATE TABLE examples (
//	    id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//	    name        VARCHAR(255) NOT NULL,
//	    description TEXT         NOT NULL DEFAULT '',
//	    is_active   BOOLEAN      NOT NULL DEFAULT TRUE,
//	    created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
//	    updated_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW()
//	);
type Example struct {
	// Identity - UUID for distributed systems
	ID uuid.UUID `json:"id" db:"id"`

	// Basic Information
	Name        string `json:"name" db:"name"`               // Required, 1-255 chars
	Description string `json:"description" db:"description"` // Optional, empty string when unset (never null)

	// Status flag
	IsActive bool `json:"is_active" db:"is_active"` // Defaults to true

	// Audit timestamps
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
