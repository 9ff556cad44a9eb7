// Package tmdb provides a client for The Movie Database search API, used to
// prefill movie and series entries.
package tmdb

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p/"
)

// Client provides access to the TMDB search API.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
	apiKey      string
	baseURL     string
}

// NewClient creates a new TMDB client.
// TMDB enforces roughly 50 requests per second; we stay far below that.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(10), 10),
		logger:      logger,
		apiKey:      apiKey,
		baseURL:     defaultBaseURL,
	}
}

// Enabled reports whether the client has an API key configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// PosterURL builds a full image URL from a TMDB poster path.
// Size is a TMDB size tag like "w342" or "original".
func PosterURL(posterPath, size string) string {
	if posterPath == "" {
		return ""
	}
	if size == "" {
		size = "w342"
	}
	return imageBaseURL + size + posterPath
}

// wait blocks until the rate limiter allows a request.
func (c *Client) wait(ctx context.Context) error {
	return c.rateLimiter.Wait(ctx)
}
