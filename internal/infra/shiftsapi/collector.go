package shiftsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
	"github.com/KasumiMercury/primind-top-workplaces/internal/observability/metrics"
	"github.com/KasumiMercury/primind-top-workplaces/internal/observability/tracing"
)

type collectorState int

const (
	stateFetching collectorState = iota
	stateDone
)

// Collector follows the next-link cursor of a resource collection until a
// page arrives without one. Pages are fetched strictly one after another.
type Collector[T any] struct {
	fetcher  PageFetcher
	resource string
	startURL string
	metrics  *metrics.CollectionMetrics
}

func NewCollector[T any](fetcher PageFetcher, startURL, resource string, m *metrics.CollectionMetrics) *Collector[T] {
	return &Collector[T]{
		fetcher:  fetcher,
		resource: resource,
		startURL: startURL,
		metrics:  m,
	}
}

// Pages yields decoded pages in order. Every range starts again from the
// first page. After an error is yielded the sequence ends.
func (c *Collector[T]) Pages(ctx context.Context) iter.Seq2[Page[T], error] {
	return func(yield func(Page[T], error) bool) {
		state := stateFetching
		current := c.startURL
		visited := make(map[string]struct{})

		for pageIndex := 0; state == stateFetching; pageIndex++ {
			visited[current] = struct{}{}

			page, links, err := c.fetch(ctx, current, pageIndex)
			if err != nil {
				yield(Page[T]{}, err)
				return
			}

			next, nextState, cursorErr := advance(current, links, visited)
			if !yield(page, nil) {
				return
			}
			if cursorErr != nil {
				yield(Page[T]{}, cursorErr)
				return
			}

			current, state = next, nextState
		}
	}
}

// Collect materializes the whole collection. It is all-or-nothing: any
// failure discards the items gathered so far.
func (c *Collector[T]) Collect(ctx context.Context) ([]T, error) {
	ctx, span := tracing.StartCollectSpan(ctx, c.resource, c.startURL)
	defer span.End()

	start := time.Now()
	items := make([]T, 0)
	pages := 0

	for page, err := range c.Pages(ctx) {
		if err != nil {
			wrapped := fmt.Errorf("%w: %s: %w", domain.ErrRetrievalFailed, c.resource, err)
			tracing.RecordCollectResult(span, pages, len(items), wrapped)
			if c.metrics != nil {
				c.metrics.RecordCollection(ctx, c.resource, metrics.OutcomeFailure, time.Since(start))
			}
			slog.ErrorContext(ctx, "failed to collect resource",
				slog.String("resource", c.resource),
				slog.Int("pages_fetched", pages),
				slog.String("error", err.Error()),
			)
			return nil, wrapped
		}
		items = append(items, page.Data...)
		pages++
	}

	tracing.RecordCollectResult(span, pages, len(items), nil)
	if c.metrics != nil {
		c.metrics.RecordCollection(ctx, c.resource, metrics.OutcomeSuccess, time.Since(start))
	}

	slog.InfoContext(ctx, "collected resource",
		slog.String("resource", c.resource),
		slog.Int("pages", pages),
		slog.Int("items", len(items)),
	)

	return items, nil
}

func (c *Collector[T]) fetch(ctx context.Context, pageURL string, pageIndex int) (Page[T], Links, error) {
	ctx, span := tracing.StartPageFetchSpan(ctx, c.resource, pageURL, pageIndex)
	defer span.End()

	raw, err := c.fetcher.FetchPage(ctx, pageURL)
	if err != nil {
		tracing.RecordError(span, err)
		return Page[T]{}, Links{}, err
	}

	data := make([]T, 0, len(raw.Data))
	for i, item := range raw.Data {
		if !isJSONObject(item) {
			err := fmt.Errorf("%w: item %d of %s is not an object", ErrDecode, i, pageURL)
			tracing.RecordError(span, err)
			return Page[T]{}, Links{}, err
		}

		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			err = fmt.Errorf("%w: item %d of %s: %w", ErrDecode, i, pageURL, err)
			tracing.RecordError(span, err)
			return Page[T]{}, Links{}, err
		}
		data = append(data, v)
	}

	if c.metrics != nil {
		c.metrics.RecordPageFetched(ctx, c.resource, len(data))
	}
	tracing.RecordError(span, nil)

	return Page[T]{Data: data, Links: raw.Links}, raw.Links, nil
}

// isJSONObject reports whether item is a JSON object. Items of any other
// kind, null included, are not records.
func isJSONObject(item json.RawMessage) bool {
	trimmed := bytes.TrimLeft(item, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// advance computes the transition out of the fetching state for the page
// fetched from current.
func advance(current string, links Links, visited map[string]struct{}) (string, collectorState, error) {
	if !links.HasNext() {
		return "", stateDone, nil
	}

	next, err := resolveCursor(current, *links.Next)
	if err != nil {
		return "", stateDone, err
	}

	if _, seen := visited[next]; seen {
		return "", stateDone, fmt.Errorf("%w: %s", ErrCursorCycle, next)
	}

	return next, stateFetching, nil
}

// resolveCursor turns a next link into an absolute request target. Relative
// links resolve against the page that carried them.
func resolveCursor(current, cursor string) (string, error) {
	if strings.TrimSpace(cursor) == "" {
		return "", fmt.Errorf("%w: empty next link", ErrMalformedCursor)
	}

	ref, err := url.Parse(cursor)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCursor, err)
	}

	base, err := url.Parse(current)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCursor, err)
	}

	resolved := base.ResolveReference(ref)
	if (resolved.Scheme != "http" && resolved.Scheme != "https") || resolved.Host == "" {
		return "", fmt.Errorf("%w: %q is not an http(s) URL", ErrMalformedCursor, cursor)
	}

	return resolved.String(), nil
}
