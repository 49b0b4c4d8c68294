package sitesum

import "context"

// Fetcher retrieves the raw HTML of a web page.
type Fetcher interface {
	// Fetch issues a single request for the URL and returns the page HTML.
	// Transport failures and non-success statuses are reported as EFETCH.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
