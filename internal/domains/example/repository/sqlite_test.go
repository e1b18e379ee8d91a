package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"template-backend/internal/domains/example"
	"template-backend/internal/domains/example/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Test fixture
// ─────────────────────────────────────────────────────────────────────────────

func newTestRepo(t *testing.T) example.Repository {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// The in-memory database lives and dies with this one connection
	db.SetMaxOpenConns(1)

	require.NoError(t, repository.EnsureSchema(context.Background(), db))

	return repository.NewSQLiteRepository(db)
}

func mustCreate(t *testing.T, r example.Repository, name string) *example.Example {
	t.Helper()

	created, err := r.Create(context.Background(), &example.Example{
		Name:        name,
		Description: "",
		IsActive:    true,
	})
	require.NoError(t, err)
	return created
}

// ─────────────────────────────────────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────────────────────────────────────

func TestSQLiteRepo_Create(t *testing.T) {
	r := newTestRepo(t)

	created, err := r.Create(context.Background(), &example.Example{
		Name:        "First Item",
		Description: "",
		IsActive:    true,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "First Item", created.Name)
	assert.Equal(t, "", created.Description)
	assert.True(t, created.IsActive)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestSQLiteRepo_Create_DistinctIDs(t *testing.T) {
	r := newTestRepo(t)

	a := mustCreate(t, r, "A")
	b := mustCreate(t, r, "B")

	assert.NotEqual(t, a.ID, b.ID)
}

func TestSQLiteRepo_Create_RoundTrip(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, &example.Example{
		Name:        "Stored Item",
		Description: "with a description",
		IsActive:    false,
	})
	require.NoError(t, err)

	fetched, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Stored Item", fetched.Name)
	assert.Equal(t, "with a description", fetched.Description)
	assert.False(t, fetched.IsActive)
	assert.True(t, created.CreatedAt.Equal(fetched.CreatedAt))
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID
// ─────────────────────────────────────────────────────────────────────────────

func TestSQLiteRepo_GetByID_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, example.ErrExampleNotFound)
}

// ─────────────────────────────────────────────────────────────────────────────
// List
// ─────────────────────────────────────────────────────────────────────────────

func TestSQLiteRepo_List_NewestFirst(t *testing.T) {
	r := newTestRepo(t)

	a := mustCreate(t, r, "A")
	b := mustCreate(t, r, "B")
	c := mustCreate(t, r, "C")

	items, total, err := r.List(context.Background(), 0, 20)
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	require.Len(t, items, 3)
	assert.Equal(t, c.ID, items[0].ID)
	assert.Equal(t, b.ID, items[1].ID)
	assert.Equal(t, a.ID, items[2].ID)
}

func TestSQLiteRepo_List_PageBoundary(t *testing.T) {
	r := newTestRepo(t)

	for i := 0; i < 25; i++ {
		mustCreate(t, r, fmt.Sprintf("Item %02d", i))
	}

	page1, total, err := r.List(context.Background(), 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, page1, 20)

	page2, total, err := r.List(context.Background(), 20, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, page2, 5)

	// The last record created is the first one listed
	assert.Equal(t, "Item 24", page1[0].Name)
	assert.Equal(t, "Item 00", page2[4].Name)
}

func TestSQLiteRepo_List_Empty(t *testing.T) {
	r := newTestRepo(t)

	items, total, err := r.List(context.Background(), 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Len(t, items, 0)
}

// ─────────────────────────────────────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────────────────────────────────────

func TestSQLiteRepo_Update(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, &example.Example{
		Name:        "Before",
		Description: "unchanged",
		IsActive:    true,
	})
	require.NoError(t, err)

	// updated_at must land strictly after the creation timestamp
	time.Sleep(20 * time.Millisecond)

	created.Name = "After"
	updated, err := r.Update(ctx, created)
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, "unchanged", updated.Description)
	assert.True(t, updated.IsActive)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt))
}

func TestSQLiteRepo_Update_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.Update(context.Background(), &example.Example{
		ID:   uuid.New(),
		Name: "Ghost",
	})
	assert.ErrorIs(t, err, example.ErrExampleNotFound)
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────────────────────────────────────

func TestSQLiteRepo_Delete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created := mustCreate(t, r, "Doomed")

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err := r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, example.ErrExampleNotFound)
}

func TestSQLiteRepo_Delete_NotFound(t *testing.T) {
	r := newTestRepo(t)

	err := r.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, example.ErrExampleNotFound)
}

func TestSQLiteRepo_Delete_Twice(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created := mustCreate(t, r, "Once")

	require.NoError(t, r.Delete(ctx, created.ID))
	assert.ErrorIs(t, r.Delete(ctx, created.ID), example.ErrExampleNotFound)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

func seedSearchData(t *testing.T, r example.Repository) {
	t.Helper()
	ctx := context.Background()

	rows := []example.Example{
		{Name: "Alpha Widget", Description: "first device", IsActive: true},
		{Name: "Beta Gadget", Description: "second widget", IsActive: true},
		{Name: "Gamma Gizmo", Description: "retired device", IsActive: false},
	}
	for i := range rows {
		_, err := r.Create(ctx, &rows[i])
		require.NoError(t, err)
	}
}

func TestSQLiteRepo_Search_MatchesNameAndDescription(t *testing.T) {
	r := newTestRepo(t)
	seedSearchData(t, r)

	items, total, err := r.Search(context.Background(), example.ExampleFilter{
		Search: "widget",
		SortBy: "name",
		Order:  "asc",
		Limit:  20,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "Alpha Widget", items[0].Name)
	assert.Equal(t, "Beta Gadget", items[1].Name)
}

func TestSQLiteRepo_Search_CaseInsensitive(t *testing.T) {
	r := newTestRepo(t)
	seedSearchData(t, r)

	_, total, err := r.Search(context.Background(), example.ExampleFilter{
		Search: "WIDGET",
		SortBy: "created_at",
		Order:  "desc",
		Limit:  20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestSQLiteRepo_Search_IsActiveFilter(t *testing.T) {
	r := newTestRepo(t)
	seedSearchData(t, r)

	inactive := false
	items, total, err := r.Search(context.Background(), example.ExampleFilter{
		IsActive: &inactive,
		SortBy:   "created_at",
		Order:    "desc",
		Limit:    20,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Gamma Gizmo", items[0].Name)
}

func TestSQLiteRepo_Search_WildcardsMatchLiterally(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.Create(ctx, &example.Example{Name: "100% cotton", IsActive: true})
	require.NoError(t, err)
	_, err = r.Create(ctx, &example.Example{Name: "100 percent", IsActive: true})
	require.NoError(t, err)

	// "%" in the search term must not act as a wildcard
	items, total, err := r.Search(ctx, example.ExampleFilter{
		Search: "100%",
		SortBy: "created_at",
		Order:  "desc",
		Limit:  20,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "100% cotton", items[0].Name)
}

func TestSQLiteRepo_Search_Pagination(t *testing.T) {
	r := newTestRepo(t)

	for i := 0; i < 5; i++ {
		mustCreate(t, r, fmt.Sprintf("Widget %d", i))
	}

	items, total, err := r.Search(context.Background(), example.ExampleFilter{
		Search: "widget",
		SortBy: "name",
		Order:  "asc",
		Limit:  2,
		Offset: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget 4", items[0].Name)
}
