package sitesum

import "context"

// Summarizer sends a prepared conversation to a completion service.
type Summarizer interface {
	// Summarize returns the text of the first completion choice.
	// Remote failures and malformed responses are reported as EAPI.
	Summarize(ctx context.Context, messages []Message) (string, error)
}
