package api_test

import (
	"crypto/rand"
	"encoding/json/v2"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seenhub/seenhub-server/internal/api"
	"github.com/seenhub/seenhub-server/internal/auth"
	"github.com/seenhub/seenhub-server/internal/metadata/kakao"
	"github.com/seenhub/seenhub-server/internal/metadata/lastfm"
	"github.com/seenhub/seenhub-server/internal/metadata/tmdb"
	"github.com/seenhub/seenhub-server/internal/search"
	"github.com/seenhub/seenhub-server/internal/service"
	"github.com/seenhub/seenhub-server/internal/store"
)

// newTestServer wires a full server against temp-dir storage.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	st, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	idx, err := search.NewIndex(search.Options{DataPath: t.TempDir(), Logger: logger})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	searchService := service.NewSearchService(idx, st, logger)
	st.SetSearchIndexer(searchService)

	key := make([]byte, 32)
	_, err = rand.Read(key)
	require.NoError(t, err)
	tokenService, err := auth.NewTokenService(key, time.Hour)
	require.NoError(t, err)

	srv := api.NewServer(api.Options{
		Store:         st,
		AuthService:   service.NewAuthService(st, tokenService, logger),
		BookService:   service.NewCatalogService(st.Books, logger),
		MovieService:  service.NewCatalogService(st.Movies, logger),
		MusicService:  service.NewCatalogService(st.Music, logger),
		SeriesService: service.NewCatalogService(st.Series, logger),
		ReviewService: service.NewReviewService(st, logger),
		SearchService: searchService,
		Metadata: api.MetadataClients{
			Books:  kakao.NewClient("", logger),
			Screen: tmdb.NewClient("", logger),
			Music:  lastfm.NewClient("", logger),
		},
		Logger: logger,
	})

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts
}

// newSessionClient registers a user and logs in, returning a client whose
// cookie jar carries the session.
func newSessionClient(t *testing.T, ts *httptest.Server) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/user",
		`{"loginName":"tester","password":"correct horse","displayName":"Tester"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, client, http.MethodPost, ts.URL+"/api/auth",
		`{"loginName":"tester","password":"correct horse"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	return client
}

// doJSON sends a request with a JSON body.
func doJSON(t *testing.T, client *http.Client, method, url, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeBody reads a response body into dest and closes it.
func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, dest), "body: %s", data)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
}

func TestCreateBook_NormalizesGenreString(t *testing.T) {
	ts := newTestServer(t)
	client := newSessionClient(t, ts)

	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/book",
		`{"title":"Dune","author":"Herbert","genre":"SF"}`)

	var book map[string]any
	decodeBody(t, resp, &book)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "Dune", book["title"])
	assert.Equal(t, []any{"SF"}, book["genre"])
	assert.Equal(t, false, book["deleted"])
	assert.NotEmpty(t, book["id"])
	assert.NotEmpty(t, book["createdAt"])
}

func TestCreateBook_RejectsUnknownGenre(t *testing.T) {
	ts := newTestServer(t)
	client := newSessionClient(t, ts)

	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/book",
		`{"title":"Dune","author":"Herbert","genre":"Polka"}`)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestCreateBook_RequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.DefaultClient, http.MethodPost, ts.URL+"/api/book",
		`{"title":"Dune","author":"Herbert"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListBooks_Paged(t *testing.T) {
	ts := newTestServer(t)
	client := newSessionClient(t, ts)

	for i := range 3 {
		resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/book",
			fmt.Sprintf(`{"title":"Book %d","author":"Author"}`, i))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
		// Keep createdAt strictly ordered.
		time.Sleep(2 * time.Millisecond)
	}

	// Unpaged listing returns a bare array, newest first.
	resp := doJSON(t, client, http.MethodGet, ts.URL+"/api/book", "")
	var all []map[string]any
	decodeBody(t, resp, &all)
	require.Len(t, all, 3)
	assert.Equal(t, "Book 2", all[0]["title"])
	assert.Equal(t, "Book 0", all[2]["title"])

	// Paged listing wraps in {content, last}.
	resp = doJSON(t, client, http.MethodGet, ts.URL+"/api/book?page=0&size=2", "")
	var page0 struct {
		Content []map[string]any `json:"content"`
		Last    bool             `json:"last"`
	}
	decodeBody(t, resp, &page0)
	require.Len(t, page0.Content, 2)
	assert.False(t, page0.Last)

	resp = doJSON(t, client, http.MethodGet, ts.URL+"/api/book?page=1&size=2", "")
	var page1 struct {
		Content []map[string]any `json:"content"`
		Last    bool             `json:"last"`
	}
	decodeBody(t, resp, &page1)
	require.Len(t, page1.Content, 1)
	assert.True(t, page1.Last)

	// No duplication across pages.
	seen := map[string]bool{}
	for _, item := range append(page0.Content, page1.Content...) {
		id := item["id"].(string)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestListBooks_BadPageParam(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.DefaultClient, http.MethodGet, ts.URL+"/api/book?page=x&size=2", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateMovie_MalformedID(t *testing.T) {
	ts := newTestServer(t)
	client := newSessionClient(t, ts)

	resp := doJSON(t, client, http.MethodPatch, ts.URL+"/api/movie/5f7a3b2c1d0e9f8a7b6c5d4e",
		`{"title":"Renamed"}`)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid ID format.", body["error"])
	assert.Equal(t, false, body["success"])
}

func TestUpdateBook_PartialFields(t *testing.T) {
	ts := newTestServer(t)
	client := newSessionClient(t, ts)

	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/book",
		`{"title":"Original","author":"Author","publisher":"Press","genre":["SF","Fantasy"]}`)
	var created map[string]any
	decodeBody(t, resp, &created)
	id := created["id"].(string)

	resp = doJSON(t, client, http.MethodPatch, ts.URL+"/api/book/"+id, `{"title":"Renamed"}`)
	var updated struct {
		Message string         `json:"message"`
		Item    map[string]any `json:"item"`
	}
	decodeBody(t, resp, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.NotEmpty(t, updated.Message)
	assert.Equal(t, "Renamed", updated.Item["title"])
	assert.Equal(t, "Author", updated.Item["author"])
	assert.Equal(t, "Press", updated.Item["publisher"])
	assert.Equal(t, []any{"SF", "Fantasy"}, updated.Item["genre"])
	assert.Equal(t, created["createdAt"], updated.Item["createdAt"])
}

func TestLegacyDelete_ThenGetIs404(t *testing.T) {
	ts := newTestServer(t)
	client := newSessionClient(t, ts)

	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/music",
		`{"title":"OK Computer","artist":"Radiohead","genre":"Rock"}`)
	var created map[string]any
	decodeBody(t, resp, &created)
	id := created["id"].(string)

	resp = doJSON(t, client, http.MethodPut, ts.URL+"/api/music",
		fmt.Sprintf(`{"id":%q}`, id))
	var deleted struct {
		Message string         `json:"message"`
		Item    map[string]any `json:"item"`
	}
	decodeBody(t, resp, &deleted)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, deleted.Item["deleted"])

	resp = doJSON(t, client, http.MethodGet, ts.URL+"/api/music/"+id, "")
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Deleting again is a no-op that still returns the item.
	resp = doJSON(t, client, http.MethodDelete, ts.URL+"/api/music/"+id, "")
	var again struct {
		Item map[string]any `json:"item"`
	}
	decodeBody(t, resp, &again)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, again.Item["deleted"])
}

func TestAuthFlow(t *testing.T) {
	ts := newTestServer(t)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	// Unauthenticated session check.
	resp := doJSON(t, client, http.MethodGet, ts.URL+"/api/user", "")
	var session map[string]any
	decodeBody(t, resp, &session)
	assert.Equal(t, false, session["authenticated"])

	// Register.
	resp = doJSON(t, client, http.MethodPost, ts.URL+"/api/user",
		`{"loginName":"frank","password":"long enough","displayName":"Frank"}`)
	var user map[string]any
	decodeBody(t, resp, &user)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "frank", user["loginName"])
	assert.NotContains(t, user, "passwordHash")

	// Duplicate login name.
	resp = doJSON(t, client, http.MethodPost, ts.URL+"/api/user",
		`{"loginName":"frank","password":"long enough","displayName":"Frank II"}`)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Unknown user is 404, wrong password is 401.
	resp = doJSON(t, client, http.MethodPost, ts.URL+"/api/auth",
		`{"loginName":"nobody","password":"long enough"}`)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, client, http.MethodPost, ts.URL+"/api/auth",
		`{"loginName":"frank","password":"wrong password"}`)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Login sets the session cookie.
	resp = doJSON(t, client, http.MethodPost, ts.URL+"/api/auth",
		`{"loginName":"frank","password":"long enough"}`)
	decodeBody(t, resp, &user)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "frank", user["loginName"])

	resp = doJSON(t, client, http.MethodGet, ts.URL+"/api/user", "")
	decodeBody(t, resp, &session)
	assert.Equal(t, true, session["authenticated"])

	// Logout clears it.
	resp = doJSON(t, client, http.MethodDelete, ts.URL+"/api/auth", "")
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, client, http.MethodGet, ts.URL+"/api/user", "")
	decodeBody(t, resp, &session)
	assert.Equal(t, false, session["authenticated"])
}

func TestReviewFlow(t *testing.T) {
	ts := newTestServer(t)
	client := newSessionClient(t, ts)

	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/review",
		`{"comment":"A masterpiece of world-building."}`)
	var review map[string]any
	decodeBody(t, resp, &review)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	reviewID := review["id"].(string)
	require.NotEmpty(t, reviewID)

	// Reads are public.
	resp = doJSON(t, http.DefaultClient, http.MethodGet, ts.URL+"/api/review/"+reviewID, "")
	decodeBody(t, resp, &review)
	assert.Equal(t, "A masterpiece of world-building.", review["comment"])

	// Link the review to a book through commentId.
	resp = doJSON(t, client, http.MethodPost, ts.URL+"/api/book",
		`{"title":"Dune","author":"Herbert"}`)
	var book map[string]any
	decodeBody(t, resp, &book)
	bookID := book["id"].(string)

	resp = doJSON(t, client, http.MethodPatch, ts.URL+"/api/book/"+bookID,
		fmt.Sprintf(`{"commentId":%q}`, reviewID))
	var updated struct {
		Item map[string]any `json:"item"`
	}
	decodeBody(t, resp, &updated)
	assert.Equal(t, reviewID, updated.Item["commentId"])
}

func TestSearchEndpoint(t *testing.T) {
	ts := newTestServer(t)
	client := newSessionClient(t, ts)

	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/book",
		`{"title":"The Left Hand of Darkness","author":"Ursula K. Le Guin","genre":"SF"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, http.DefaultClient, http.MethodGet, ts.URL+"/api/search?q=darkness", "")
	var result struct {
		Total uint64 `json:"total"`
		Hits  []struct {
			Kind  string `json:"kind"`
			Title string `json:"title"`
		} `json:"hits"`
	}
	decodeBody(t, resp, &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "book", result.Hits[0].Kind)
	assert.Equal(t, "The Left Hand of Darkness", result.Hits[0].Title)

	// Invalid kind filter.
	resp = doJSON(t, http.DefaultClient, http.MethodGet, ts.URL+"/api/search?q=darkness&kind=album", "")
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearch_DeletedEntriesDropOut(t *testing.T) {
	ts := newTestServer(t)
	client := newSessionClient(t, ts)

	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/movie",
		`{"title":"Alien","director":"Ridley Scott","genre":"SF"}`)
	var movie map[string]any
	decodeBody(t, resp, &movie)
	id := movie["id"].(string)

	resp = doJSON(t, client, http.MethodDelete, ts.URL+"/api/movie/"+id, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, http.DefaultClient, http.MethodGet, ts.URL+"/api/search?q=alien", "")
	var result struct {
		Hits []map[string]any `json:"hits"`
	}
	decodeBody(t, resp, &result)
	assert.Empty(t, result.Hits)
}

func TestMetadataEndpoints_Unconfigured(t *testing.T) {
	ts := newTestServer(t)

	// No API keys configured in the test harness.
	resp := doJSON(t, http.DefaultClient, http.MethodGet, ts.URL+"/api/metadata/book?query=dune", "")
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	// Missing query is the caller's fault.
	resp = doJSON(t, http.DefaultClient, http.MethodGet, ts.URL+"/api/metadata/music", "")
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
