package tmdb

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ErrNoAPIKey is returned when searching without a configured key.
var ErrNoAPIKey = errors.New("tmdb API key not configured")

// SearchMovies searches TMDB for movies matching the query.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]Result, error) {
	var searchResp movieSearchResponse
	if err := c.search(ctx, "/search/movie", query, &searchResp); err != nil {
		return nil, err
	}

	c.logger.Debug("TMDB movie search results",
		"query", query,
		"count", len(searchResp.Results),
	)

	results := make([]Result, 0, len(searchResp.Results))
	for _, r := range searchResp.Results {
		results = append(results, Result{
			ID:          r.ID,
			Title:       r.Title,
			PosterPath:  r.PosterPath,
			PosterURL:   PosterURL(r.PosterPath, ""),
			ReleaseDate: r.ReleaseDate,
			Overview:    r.Overview,
		})
	}
	return results, nil
}

// SearchSeries searches TMDB for TV series matching the query.
func (c *Client) SearchSeries(ctx context.Context, query string) ([]Result, error) {
	var searchResp tvSearchResponse
	if err := c.search(ctx, "/search/tv", query, &searchResp); err != nil {
		return nil, err
	}

	c.logger.Debug("TMDB TV search results",
		"query", query,
		"count", len(searchResp.Results),
	)

	results := make([]Result, 0, len(searchResp.Results))
	for _, r := range searchResp.Results {
		results = append(results, Result{
			ID:          r.ID,
			Title:       r.Name,
			PosterPath:  r.PosterPath,
			PosterURL:   PosterURL(r.PosterPath, ""),
			ReleaseDate: r.FirstAirDate,
			Overview:    r.Overview,
		})
	}
	return results, nil
}

// search issues one TMDB search request and decodes the response into dest.
func (c *Client) search(ctx context.Context, path, query string, dest any) error {
	if !c.Enabled() {
		return ErrNoAPIKey
	}
	if err := c.wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", query)

	searchURL := c.baseURL + path + "?" + params.Encode()

	c.logger.Debug("searching TMDB",
		"path", path,
		"query", query,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("search failed: status %d", resp.StatusCode)
	}

	if err := json.UnmarshalRead(resp.Body, dest); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
