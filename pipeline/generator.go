// Package pipeline composes a Fetcher, an Extractor and a Summarizer into
// a sitesum.Generator.
package pipeline

import (
	"context"
	"strings"

	"github.com/fwojciec/sitesum"
)

var _ sitesum.Generator = (*Generator)(nil)

// Generator runs fetch, extract, prompt and summarize strictly in order.
// Nothing is retried or cached.
type Generator struct {
	Fetcher    sitesum.Fetcher
	Extractor  sitesum.Extractor
	Summarizer sitesum.Summarizer
}

// Generate summarizes the page at url. Errors from a step keep their
// application code; untyped errors are tagged with the step's code.
func (g *Generator) Generate(ctx context.Context, url string) (*sitesum.Summary, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, sitesum.Errorf(sitesum.EINVALID, "url required")
	}

	html, err := g.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, sitesum.WrapError(sitesum.EFETCH, err)
	}

	content, err := g.Extractor.Extract(html)
	if err != nil {
		return nil, sitesum.WrapError(sitesum.EPARSE, err)
	}

	markdown, err := g.Summarizer.Summarize(ctx, sitesum.BuildMessages(*content))
	if err != nil {
		return nil, sitesum.WrapError(sitesum.EAPI, err)
	}

	return &sitesum.Summary{
		URL:      url,
		Title:    content.Title,
		Markdown: markdown,
	}, nil
}
