package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"retail-insights/internal/core/config"
	"retail-insights/internal/core/httpclient"
)

// maxFeedBytes bounds the size of a feed response.
const maxFeedBytes = 32 << 20

// ErrFeedTooLarge is returned when the feed body exceeds the size limit.
var ErrFeedTooLarge = errors.New("order feed exceeds size limit")

// HTTPFeedAdapter implements the OrderFeed interface with a plain GET request.
type HTTPFeedAdapter struct {
	// client is the HTTP client used for feed requests.
	client *http.Client
	// url is the feed endpoint.
	url string
	// limit is the largest accepted body in bytes.
	limit int64
}

// NewHTTPFeedAdapter creates a new instance of HTTPFeedAdapter.
func NewHTTPFeedAdapter(feed config.FeedConfig, proxy config.ProxyConfig) *HTTPFeedAdapter {
	return &HTTPFeedAdapter{
		client: httpclient.NewClient(feed.Timeout, proxy.URL()),
		url:    feed.URL,
		limit:  maxFeedBytes,
	}
}

// Fetch downloads the order feed.
func (a *HTTPFeedAdapter) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("order feed returned status: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, a.limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read order feed: %w", err)
	}
	if int64(len(body)) > a.limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrFeedTooLarge, a.limit)
	}

	return body, nil
}
