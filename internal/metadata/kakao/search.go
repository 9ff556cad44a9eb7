package kakao

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
var ErrNoAPIKey = errors.New("kakao API key not configured")

// SearchBooks searches Kakao for books matching the query.
func (c *Client) SearchBooks(ctx context.Context, query string) ([]BookResult, error) {
	if !c.Enabled() {
		return nil, ErrNoAPIKey
	}
	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("size", fmt.Sprintf("%d", defaultLimit))

	searchURL := c.baseURL + "?" + params.Encode()

	c.logger.Debug("searching Kakao books",
		"query", query,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

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

	c.logger.Debug("Kakao search results",
		"query", query,
		"count", len(searchResp.Documents),
	)

	results := make([]BookResult, 0, len(searchResp.Documents))
	for _, d := range searchResp.Documents {
		results = append(results, BookResult{
			Title:     d.Title,
			Authors:   d.Authors,
			Publisher: d.Publisher,
			Thumbnail: d.Thumbnail,
			ISBN:      d.ISBN,
		})
	}

	return results, nil
}
