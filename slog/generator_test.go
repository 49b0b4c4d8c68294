package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/sitesum"
	"github.com/fwojciec/sitesum/mock"
	sumslog "github.com/fwojciec/sitesum/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("logs url title and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Generator{
			GenerateFn: func(_ context.Context, url string) (*sitesum.Summary, error) {
				return &sitesum.Summary{URL: url, Title: "Example", Markdown: "x"}, nil
			},
		}

		ctx := sumslog.WithRequestID(context.Background(), "abc")
		got, err := sumslog.NewLoggingGenerator(inner, logger).Generate(ctx, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "Example", got.Title)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=generate")
		assert.Contains(t, output, "request_id=abc")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "title=Example")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs failures at error level with code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Generator{
			GenerateFn: func(context.Context, string) (*sitesum.Summary, error) {
				return nil, sitesum.Errorf(sitesum.EFETCH, "HTTP 404 for https://example.com/x")
			},
		}

		_, err := sumslog.NewLoggingGenerator(inner, logger).Generate(context.Background(), "https://example.com/x")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "code=fetch")
		assert.NotContains(t, output, "request_id")
	})
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sumslog.RequestID(context.Background()))
	assert.Equal(t, "x", sumslog.RequestID(sumslog.WithRequestID(context.Background(), "x")))
}
