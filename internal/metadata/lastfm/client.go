// Package lastfm provides a client for the Last.fm album search API, used to
// prefill music entries.
package lastfm

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://ws.audioscrobbler.com/2.0/"

// Client provides access to the Last.fm API.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
	apiKey      string
	baseURL     string
}

// NewClient creates a new Last.fm client.
// Last.fm asks clients to stay under 5 requests per second.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(4), 4),
		logger:      logger,
		apiKey:      apiKey,
		baseURL:     defaultBaseURL,
	}
}

// Enabled reports whether the client has an API key configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// wait blocks until the rate limiter allows a request.
func (c *Client) wait(ctx context.Context) error {
	return c.rateLimiter.Wait(ctx)
}
