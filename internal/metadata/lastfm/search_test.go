package lastfm

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", slog.New(slog.DiscardHandler))
	c.baseURL = srv.URL
	return c
}

func TestSearchAlbums(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "album.search", q.Get("method"))
		assert.Equal(t, "test-key", q.Get("api_key"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "ok computer", q.Get("album"))

		_, _ = w.Write([]byte(`{
			"results": {
				"albummatches": {
					"album": [{
						"name": "OK Computer",
						"artist": "Radiohead",
						"mbid": "0b6b4ba0-d36f-47bd-b4ea-6a5b91842d29",
						"image": [
							{"#text": "https://example.com/small.jpg", "size": "small"},
							{"#text": "https://example.com/large.jpg", "size": "large"}
						]
					}]
				}
			}
		}`))
	})

	results, err := client.SearchAlbums(context.Background(), "ok computer")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "OK Computer", results[0].Title)
	assert.Equal(t, "Radiohead", results[0].Artist)
	assert.Equal(t, "0b6b4ba0-d36f-47bd-b4ea-6a5b91842d29", results[0].MBID)
	assert.Equal(t, "https://example.com/large.jpg", results[0].Thumbnail)
}

func TestSearchAlbums_EmptyResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": {"albummatches": {"album": []}}}`))
	})

	results, err := client.SearchAlbums(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchAlbums_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.SearchAlbums(context.Background(), "anything")
	require.Error(t, err)
}

func TestSearchAlbums_NoKey(t *testing.T) {
	client := NewClient("", slog.New(slog.DiscardHandler))
	_, err := client.SearchAlbums(context.Background(), "anything")
	require.ErrorIs(t, err, ErrNoAPIKey)
}

func TestBestImage(t *testing.T) {
	assert.Empty(t, bestImage(nil))
	assert.Equal(t, "a", bestImage([]image{{URL: "a", Size: "small"}, {URL: "", Size: "large"}}))
}
