package mock

import (
	"context"

	"github.com/fwojciec/sitesum"
)

var _ sitesum.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of sitesum.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, messages []sitesum.Message) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, messages []sitesum.Message) (string, error) {
	return s.SummarizeFn(ctx, messages)
}
