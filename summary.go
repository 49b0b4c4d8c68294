package sitesum

import "context"

// Summary is the result of summarizing one page.
type Summary struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Markdown string `json:"summary"`
}

// Generator runs the whole fetch, extract, prompt and summarize pipeline.
type Generator interface {
	// Generate summarizes the page at url.
	// Returns EINVALID for an empty URL without touching the network.
	Generate(ctx context.Context, url string) (*Summary, error)
}
