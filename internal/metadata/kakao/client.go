// Package kakao provides a client for the Kakao book search API, used to
// prefill book entries.
package kakao

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://dapi.kakao.com/v3/search/book"

// Client provides access to the Kakao book search API.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
	apiKey      string
	baseURL     string
}

// NewClient creates a new Kakao client. An empty apiKey yields a client
// whose searches fail; callers should not register the endpoint without a
// key.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// Kakao allows generous quotas; 5 rps with a small burst is well below them.
		rateLimiter: rate.NewLimiter(rate.Limit(5), 5),
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
