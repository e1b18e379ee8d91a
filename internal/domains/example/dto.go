package example

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Constants for validation and pagination
const (
	MaxNameLength = 255
	MinNameLength = 1

	// DefaultPageSize is the fixed page size of the public listing and
	// the default limit of the admin listing
	DefaultPageSize = 20
)

// validateName enforces the name contract shared by create and update:
// non-blank and 1-255 characters, measured after trimming surrounding
// whitespace. The stored value keeps its original whitespace.
func validateName(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	default:
		return nil
	}

	trimmed := strings.TrimSpace(s)
	if len(trimmed) < MinNameLength {
		return errors.New("name must not be blank")
	}
	if len([]rune(trimmed)) > MaxNameLength {
		return errors.New("name must be at most 255 characters")
	}
	return nil
}

// ========================================
// REQUEST DTOs
// ========================================

// CreateExampleRequest - POST /api/v1/examples
type CreateExampleRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"` // Defaults to "" when omitted
	IsActive    *bool   `json:"is_active,omitempty"`   // Defaults to true when omitted
}

func (r CreateExampleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.By(validateName),
		),
	)
}

// ToEntity converts CreateExampleRequest to Example entity,
// applying the documented defaults for omitted fields
func (r *CreateExampleRequest) ToEntity() *Example {
	e := &Example{
		Name:        r.Name,
		Description: "",
		IsActive:    true,
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.IsActive != nil {
		e.IsActive = *r.IsActive
	}
	return e
}

// UpdateExampleRequest - PUT /api/v1/examples/:id
// All fields optional for partial updates (PATCH behavior): only fields
// present in the payload overwrite the stored record, everything else is
// left untouched. This is the documented contract of the endpoint even
// though the verb is PUT.
type UpdateExampleRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r UpdateExampleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil, validation.By(validateName)),
		),
	)
}

// ApplyToEntity applies UpdateExampleRequest to an existing Example entity.
// Nil fields leave the current value in place.
func (r *UpdateExampleRequest) ApplyToEntity(e *Example) {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.IsActive != nil {
		e.IsActive = *r.IsActive
	}
}

// ========================================
// RESPONSE DTOs
// ========================================

// ExampleResponse - Public example item representation.
// Every field is always present; description is "" rather than null,
// timestamps marshal as RFC 3339.
type ExampleResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToResponse converts Example entity to ExampleResponse DTO
func (e Example) ToResponse() ExampleResponse {
	return ExampleResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// Responses converts a slice of entities. Always returns a non-nil slice
// so list payloads serialise as [] instead of null.
func Responses(items []Example) []ExampleResponse {
	responses := make([]ExampleResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, item.ToResponse())
	}
	return responses
}

// ExampleListResponse - Paginated list envelope for GET /api/v1/examples.
// Next and Previous are absolute page URLs, null on the last/first page.
type ExampleListResponse struct {
	Count    int64             `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []ExampleResponse `json:"results"`
}

// ========================================
// ADMIN DTOs
// ========================================

// ExampleFilter - Repository-level search/filter parameters
type ExampleFilter struct {
	Search   string // Case-insensitive substring match on name or description
	IsActive *bool  // nil = no filter
	SortBy   string // created_at, updated_at, name
	Order    string // asc, desc
	Limit    int
	Offset   int
}

// SearchExamplesRequest - GET /api/v1/admin/examples query parameters
type SearchExamplesRequest struct {
	Search   string `form:"search" json:"search"`
	IsActive *bool  `form:"is_active" json:"is_active"`
	SortBy   string `form:"sort_by" json:"sort_by"`
	Order    string `form:"order" json:"order"`
	Page     int    `form:"page" json:"page"`
	Limit    int    `form:"limit" json:"limit"`
}

// SetDefaults sets default values for pagination and sorting
func (r *SearchExamplesRequest) SetDefaults() {
	if r.Page == 0 {
		r.Page = 1
	}
	if r.Limit == 0 {
		r.Limit = DefaultPageSize
	}
	if r.SortBy == "" {
		r.SortBy = "created_at"
	}
	if r.Order == "" {
		r.Order = "desc"
	}
}

func (r SearchExamplesRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SortBy,
			validation.In("created_at", "updated_at", "name").Error("sort_by must be one of created_at, updated_at, name"),
		),
		validation.Field(&r.Order,
			validation.In("asc", "desc").Error("order must be asc or desc"),
		),
		validation.Field(&r.Page,
			validation.Min(1).Error("page must be at least 1"),
		),
		validation.Field(&r.Limit,
			validation.Min(1).Error("limit must be at least 1"),
			validation.Max(100).Error("limit must be at most 100"),
		),
	)
}

// ToFilter converts the validated request into repository filter terms
func (r *SearchExamplesRequest) ToFilter() ExampleFilter {
	return ExampleFilter{
		Search:   strings.TrimSpace(r.Search),
		IsActive: r.IsActive,
		SortBy:   r.SortBy,
		Order:    r.Order,
		Limit:    r.Limit,
		Offset:   (r.Page - 1) * r.Limit,
	}
}

// AdminExampleListResponse - Paginated admin listing
type AdminExampleListResponse struct {
	Data       []ExampleResponse `json:"data"`
	Pagination PaginationMeta    `json:"pagination"`
}

// PaginationMeta - Reusable pagination metadata
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}
