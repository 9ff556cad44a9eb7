package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seenhub/seenhub-server/internal/domain"
	"github.com/seenhub/seenhub-server/internal/genre"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "seenhub-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	store, err := New(dbPath, nil)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		_ = store.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

// createTestMovie builds a movie with a creation time offset so ordering
// tests get distinct timestamps.
func createTestMovie(n int) *domain.Movie {
	m := &domain.Movie{
		Title:    fmt.Sprintf("Movie %d", n),
		Director: "Test Director",
	}
	m.Init(fmt.Sprintf("movie-%021d", n), time.Now().Add(time.Duration(n)*time.Millisecond))
	m.Genre = genre.List{"Drama"}
	return m
}

func TestCatalog_CreateAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	movie := createTestMovie(1)

	require.NoError(t, store.Movies.Create(ctx, movie))

	retrieved, err := store.Movies.Get(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, movie.ID, retrieved.ID)
	assert.Equal(t, "Movie 1", retrieved.Title)
	assert.Equal(t, genre.List{"Drama"}, retrieved.Genre)
	assert.False(t, retrieved.Deleted)
}

func TestCatalog_Create_Duplicate(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	movie := createTestMovie(1)

	require.NoError(t, store.Movies.Create(ctx, movie))
	err := store.Movies.Create(ctx, movie)
	require.ErrorIs(t, err, ErrEntryExists)
}

func TestCatalog_Get_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.Movies.Get(context.Background(), "movie-missing")
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestCatalog_Update_PreservesCreatedAt(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	movie := createTestMovie(1)
	require.NoError(t, store.Movies.Create(ctx, movie))

	original, err := store.Movies.Get(ctx, movie.ID)
	require.NoError(t, err)

	updated := *original
	updated.Title = "Renamed"
	updated.CreatedAt = time.Now().Add(time.Hour)
	require.NoError(t, store.Movies.Update(ctx, &updated))

	retrieved, err := store.Movies.Get(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", retrieved.Title)
	assert.True(t, original.CreatedAt.Equal(retrieved.CreatedAt))
}

func TestCatalog_Update_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	movie := createTestMovie(1)
	err := store.Movies.Update(context.Background(), movie)
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestCatalog_SoftDelete(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	movie := createTestMovie(1)
	require.NoError(t, store.Movies.Create(ctx, movie))

	deleted, err := store.Movies.SoftDelete(ctx, movie.ID)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	// The record survives but listings drop it.
	retrieved, err := store.Movies.Get(ctx, movie.ID)
	require.NoError(t, err)
	assert.True(t, retrieved.Deleted)

	all, err := store.Movies.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCatalog_SoftDelete_Idempotent(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	movie := createTestMovie(1)
	require.NoError(t, store.Movies.Create(ctx, movie))

	_, err := store.Movies.SoftDelete(ctx, movie.ID)
	require.NoError(t, err)

	again, err := store.Movies.SoftDelete(ctx, movie.ID)
	require.NoError(t, err)
	assert.True(t, again.Deleted)
}

func TestCatalog_SoftDelete_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.Movies.SoftDelete(context.Background(), "movie-missing")
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestCatalog_ListAll_NewestFirst(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	for n := 1; n <= 5; n++ {
		require.NoError(t, store.Movies.Create(ctx, createTestMovie(n)))
	}

	all, err := store.Movies.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := range 5 {
		assert.Equal(t, fmt.Sprintf("Movie %d", 5-i), all[i].Title)
	}
}

func TestCatalog_ListAll_ExcludesDeleted(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	for n := 1; n <= 4; n++ {
		require.NoError(t, store.Movies.Create(ctx, createTestMovie(n)))
	}
	_, err := store.Movies.SoftDelete(ctx, "movie-"+fmt.Sprintf("%021d", 2))
	require.NoError(t, err)

	all, err := store.Movies.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, m := range all {
		assert.NotEqual(t, "Movie 2", m.Title)
		assert.False(t, m.Deleted)
	}
}

func TestCatalog_ListPage(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	for n := 1; n <= 7; n++ {
		require.NoError(t, store.Movies.Create(ctx, createTestMovie(n)))
	}

	page0, err := store.Movies.ListPage(ctx, 0, 3)
	require.NoError(t, err)
	require.Len(t, page0.Content, 3)
	assert.False(t, page0.Last)
	assert.Equal(t, "Movie 7", page0.Content[0].Title)

	page1, err := store.Movies.ListPage(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, page1.Content, 3)
	assert.False(t, page1.Last)

	page2, err := store.Movies.ListPage(ctx, 2, 3)
	require.NoError(t, err)
	require.Len(t, page2.Content, 1)
	assert.True(t, page2.Last)
	assert.Equal(t, "Movie 1", page2.Content[0].Title)

	// Pages together cover every entry exactly once.
	seen := make(map[string]bool)
	for _, p := range [][]*domain.Movie{page0.Content, page1.Content, page2.Content} {
		for _, m := range p {
			assert.False(t, seen[m.ID], "entry %s appeared twice", m.ID)
			seen[m.ID] = true
		}
	}
	assert.Len(t, seen, 7)
}

func TestCatalog_ListPage_ExactBoundary(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	for n := 1; n <= 6; n++ {
		require.NoError(t, store.Movies.Create(ctx, createTestMovie(n)))
	}

	page1, err := store.Movies.ListPage(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, page1.Content, 3)
	assert.True(t, page1.Last)
}

func TestCatalog_ListPage_PastEnd(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Movies.Create(ctx, createTestMovie(1)))

	page, err := store.Movies.ListPage(ctx, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.True(t, page.Last)
}

func TestCatalog_KindsAreIsolated(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	movie := createTestMovie(1)
	require.NoError(t, store.Movies.Create(ctx, movie))

	book := &domain.Book{Title: "A Book", Author: "Someone"}
	book.Init("book-"+fmt.Sprintf("%021d", 1), time.Now())
	require.NoError(t, store.Books.Create(ctx, book))

	movies, err := store.Movies.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 1)

	books, err := store.Books.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "A Book", books[0].Title)
}
