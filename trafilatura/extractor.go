package trafilatura

import (
	"strings"

	"github.com/fwojciec/sitesum"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements sitesum.Extractor at compile time.
var _ sitesum.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to reduce a page to its main text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and main text.
func (e *Extractor) Extract(rawHTML string) (*sitesum.PageContent, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitesum.Errorf(sitesum.EPARSE, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, sitesum.WrapError(sitesum.EPARSE, err)
	}

	return &sitesum.PageContent{
		Title: sitesum.TitleOrDefault(result.Metadata.Title),
		Body:  sitesum.NormalizeText(result.ContentText),
	}, nil
}
