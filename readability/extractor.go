package readability

import (
	"strings"

	"github.com/fwojciec/sitesum"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements sitesum.Extractor at compile time.
var _ sitesum.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to reduce a page to its main article text.
// Navigation, sidebars and footers are dropped along with scripts and styles.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article title and plain text.
func (e *Extractor) Extract(rawHTML string) (*sitesum.PageContent, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitesum.Errorf(sitesum.EPARSE, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, sitesum.WrapError(sitesum.EPARSE, err)
	}

	return &sitesum.PageContent{
		Title: sitesum.TitleOrDefault(article.Title),
		Body:  sitesum.NormalizeText(article.TextContent),
	}, nil
}
