package shiftsapi

import "context"

//go:generate mockgen -source=fetcher.go -destination=fetcher_mock.go -package=shiftsapi

// PageFetcher retrieves a single page of a resource collection.
type PageFetcher interface {
	FetchPage(ctx context.Context, pageURL string) (*RawPage, error)
}
