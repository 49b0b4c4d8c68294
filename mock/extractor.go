package mock

import "github.com/fwojciec/sitesum"

var _ sitesum.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitesum.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*sitesum.PageContent, error)
}

func (e *Extractor) Extract(html string) (*sitesum.PageContent, error) {
	return e.ExtractFn(html)
}
