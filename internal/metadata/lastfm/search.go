package lastfm

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

const defaultLimit = 10

// ErrNoAPIKey is returned when searching without a configured key.
var ErrNoAPIKey = errors.New("lastfm API key not configured")

// SearchAlbums searches Last.fm for albums matching the query.
func (c *Client) SearchAlbums(ctx context.Context, query string) ([]AlbumResult, error) {
	if !c.Enabled() {
		return nil, ErrNoAPIKey
	}
	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	params := url.Values{}
	params.Set("method", "album.search")
	params.Set("album", query)
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	params.Set("limit", fmt.Sprintf("%d", defaultLimit))

	searchURL := c.baseURL + "?" + params.Encode()

	c.logger.Debug("searching Last.fm albums",
		"query", query,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search failed: status %d", resp.StatusCode)
	}

	var searchResp searchResponse
	if err := json.UnmarshalRead(resp.Body, &searchResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	albums := searchResp.Results.AlbumMatches.Album

	c.logger.Debug("Last.fm search results",
		"query", query,
		"count", len(albums),
	)

	results := make([]AlbumResult, 0, len(albums))
	for _, a := range albums {
		results = append(results, AlbumResult{
			Title:     a.Name,
			Artist:    a.Artist,
			MBID:      a.MBID,
			Thumbnail: bestImage(a.Image),
		})
	}
	return results, nil
}

// bestImage picks the largest image URL Last.fm provides.
func bestImage(images []image) string {
	// Last.fm lists sizes small to extralarge; take the last non-empty URL.
	for i := len(images) - 1; i >= 0; i-- {
		if images[i].URL != "" {
			return images[i].URL
		}
	}
	return ""
}
