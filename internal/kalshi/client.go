// Package kalshi fetches a market's order book from the Kalshi trade API,
// either by polling the REST endpoint or by following the websocket delta
// feed, and hands the result to the session loop as ready-made bins.
package kalshi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"kalshi-book-tui/internal/book"
)

// DefaultBaseURL is the public trade API.
const DefaultBaseURL = "https://api.elections.kalshi.com/trade-api/v2"

const (
	requestTimeout = 5 * time.Second
	maxBodyBytes   = 4 << 20
)

// HTTPClient defines the interface for the HTTP client's behaviour.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ HTTPClient = (*http.Client)(nil)

// Client fetches orderbook snapshots over REST.
type Client struct {
	HTTP    HTTPClient
	BaseURL string
}

// NewClient returns a Client against the public API with the default
// request timeout.
func NewClient() *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: requestTimeout},
		BaseURL: DefaultBaseURL,
	}
}

// Orderbook performs one GET for the market's book and bins the result.
// Any network, status or parse failure comes back as a single error; the
// caller shows it and tries again on the next cycle.
func (c *Client) Orderbook(ctx context.Context, ticker string) (book.Bins, error) {
	endpoint := fmt.Sprintf("%s/markets/%s/orderbook", c.BaseURL, url.PathEscape(ticker))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return book.Bins{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return book.Bins{}, fmt.Errorf("fetch orderbook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return book.Bins{}, fmt.Errorf("orderbook request: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return book.Bins{}, fmt.Errorf("read body: %w", err)
	}

	yes, no, err := ParseOrderbook(body)
	if err != nil {
		return book.Bins{}, err
	}
	return book.Build(yes, no), nil
}
