package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seenhub/seenhub-server/internal/domain"
	"github.com/seenhub/seenhub-server/internal/genre"
)

func setupTestIndex(t *testing.T) *Index {
	t.Helper()

	idx, err := NewIndex(Options{DataPath: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func seedTestIndex(t *testing.T, idx *Index) {
	t.Helper()

	book := &domain.Book{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin"}
	book.Init("book-000000000000000000001", time.Now())
	book.Genre = genre.List{"SF"}

	movie := &domain.Movie{Title: "Alien", Director: "Ridley Scott"}
	movie.Init("movie-00000000000000000001", time.Now())
	movie.Genre = genre.List{"SF", "Horror"}

	music := &domain.Music{Title: "Dark Side of the Moon", Artist: "Pink Floyd"}
	music.Init("music-00000000000000000001", time.Now())
	music.Genre = genre.List{"Rock"}

	docs := []*Document{
		EntryToDocument(book),
		EntryToDocument(movie),
		EntryToDocument(music),
	}
	require.NoError(t, idx.IndexDocuments(docs))
}

func TestIndex_RoundTrip(t *testing.T) {
	idx := setupTestIndex(t)
	seedTestIndex(t, idx)

	count, err := idx.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}

func TestSearch_ByTitle(t *testing.T) {
	idx := setupTestIndex(t)
	seedTestIndex(t, idx)

	result, err := idx.Search(context.Background(), Params{Query: "alien", Limit: 10})
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "movie-00000000000000000001", result.Hits[0].ID)
	assert.Equal(t, "movie", result.Hits[0].Kind)
	assert.Equal(t, "Alien", result.Hits[0].Title)
}

func TestSearch_ByCreator(t *testing.T) {
	idx := setupTestIndex(t)
	seedTestIndex(t, idx)

	result, err := idx.Search(context.Background(), Params{Query: "le guin", Limit: 10})
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "book-000000000000000000001", result.Hits[0].ID)
}

func TestSearch_KindFilter(t *testing.T) {
	idx := setupTestIndex(t)
	seedTestIndex(t, idx)

	result, err := idx.Search(context.Background(), Params{
		Query: "dark",
		Kinds: []string{"music"},
		Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "music", result.Hits[0].Kind)
}

func TestSearch_GenreFilter(t *testing.T) {
	idx := setupTestIndex(t)
	seedTestIndex(t, idx)

	result, err := idx.Search(context.Background(), Params{
		Genres: []string{"SF"},
		Limit:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), result.Total)
}

func TestSearch_FuzzyMatch(t *testing.T) {
	idx := setupTestIndex(t)
	seedTestIndex(t, idx)

	// One character off from "alien".
	result, err := idx.Search(context.Background(), Params{Query: "alein", Limit: 10})
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "movie-00000000000000000001", result.Hits[0].ID)
}

func TestDeleteDocument(t *testing.T) {
	idx := setupTestIndex(t)
	seedTestIndex(t, idx)

	require.NoError(t, idx.DeleteDocument("movie-00000000000000000001"))

	result, err := idx.Search(context.Background(), Params{Query: "alien", Kinds: []string{"movie"}, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Hits)
}

func TestRebuild_EmptiesIndex(t *testing.T) {
	idx := setupTestIndex(t)
	seedTestIndex(t, idx)

	require.NoError(t, idx.Rebuild())

	count, err := idx.DocumentCount()
	require.NoError(t, err)
	assert.Zero(t, count)
}
