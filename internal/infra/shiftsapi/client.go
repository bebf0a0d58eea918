package shiftsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

func (c *Client) FetchPage(ctx context.Context, pageURL string) (*RawPage, error) {
	slog.DebugContext(ctx, "fetching page from upstream API",
		slog.String("url", pageURL),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send request to upstream API",
			slog.String("url", pageURL),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		slog.ErrorContext(ctx, "unexpected status code from upstream API",
			slog.String("url", pageURL),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var page RawPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		slog.ErrorContext(ctx, "failed to decode page from upstream API",
			slog.String("url", pageURL),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	// An empty page still carries "data": [], so nil means the key was
	// missing or null.
	if page.Data == nil {
		return nil, fmt.Errorf("%w: missing data array", ErrDecode)
	}

	slog.DebugContext(ctx, "successfully fetched page",
		slog.String("url", pageURL),
		slog.Int("count", len(page.Data)),
		slog.Bool("has_next", page.Links.HasNext()),
	)

	return &page, nil
}
