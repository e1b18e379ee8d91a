package service

import (
	"context"

	"github.com/google/uuid"

	"template-backend/internal/domains/example"
)

// exampleService implements example.Service
// Business logic only: validation, defaults, orchestration. Persistence
// belongs to the repository, status codes to the handler.
type exampleService struct {
	repo example.Repository // Repository dependency (injected)
}

// NewExampleService creates the example service instance
// Dependency injection pattern - receives repository from container
func NewExampleService(repo example.Repository) example.Service {
	return &exampleService{
		repo: repo,
	}
}

// List retrieves one page of example items in default order
func (s *exampleService) List(ctx context.Context, page, pageSize int) ([]example.Example, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = example.DefaultPageSize
	}

	offset := (page - 1) * pageSize

	return s.repo.List(ctx, offset, pageSize)
}

// Create validates and persists a new example item
func (s *exampleService) Create(ctx context.Context, req *example.CreateExampleRequest) (*example.Example, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.ToEntity())
}

// GetByID retrieves an example item by UUID
func (s *exampleService) GetByID(ctx context.Context, id uuid.UUID) (*example.Example, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update to an existing item.
// The existence check runs before payload validation: updating a
// missing id reports not-found even when the payload is invalid.
func (s *exampleService) Update(ctx context.Context, id uuid.UUID, req *example.UpdateExampleRequest) (*example.Example, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	req.ApplyToEntity(current)

	return s.repo.Update(ctx, current)
}

// Delete removes an example item
func (s *exampleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Search retrieves a filtered page for the admin listing
func (s *exampleService) Search(ctx context.Context, req *example.SearchExamplesRequest) ([]example.Example, int64, error) {
	req.SetDefaults()

	if err := req.Validate(); err != nil {
		return nil, 0, err
	}

	return s.repo.Search(ctx, req.ToFilter())
}
