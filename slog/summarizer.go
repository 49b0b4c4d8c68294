package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitesum"
)

var _ sitesum.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging. Prompt and response
// text are not logged, only their sizes.
type LoggingSummarizer struct {
	next   sitesum.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next sitesum.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

func (s *LoggingSummarizer) Summarize(ctx context.Context, messages []sitesum.Message) (summary string, err error) {
	defer func(begin time.Time) {
		promptBytes := 0
		for _, m := range messages {
			promptBytes += len(m.Content)
		}
		s.logger.InfoContext(ctx, "summarize", requestAttrs(ctx,
			"prompt_bytes", promptBytes,
			"bytes", len(summary),
			"duration", time.Since(begin),
			"err", err,
		)...)
	}(time.Now())
	return s.next.Summarize(ctx, messages)
}
