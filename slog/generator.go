package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitesum"
)

var _ sitesum.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator logs one line per pipeline run with its outcome code.
type LoggingGenerator struct {
	next   sitesum.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next sitesum.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

func (g *LoggingGenerator) Generate(ctx context.Context, url string) (summary *sitesum.Summary, err error) {
	defer func(begin time.Time) {
		title := ""
		if summary != nil {
			title = summary.Title
		}
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		g.logger.Log(ctx, level, "generate", requestAttrs(ctx,
			"url", url,
			"title", title,
			"code", sitesum.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)...)
	}(time.Now())
	return g.next.Generate(ctx, url)
}
