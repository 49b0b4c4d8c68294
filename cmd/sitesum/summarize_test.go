package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/sitesum"
	main "github.com/fwojciec/sitesum/cmd/sitesum"
	"github.com/fwojciec/sitesum/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints title then markdown", func(t *testing.T) {
		t.Parallel()

		gen := &mock.Generator{
			GenerateFn: func(_ context.Context, url string) (*sitesum.Summary, error) {
				return &sitesum.Summary{URL: url, Title: "Example Domain", Markdown: "Summary text"}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Generator: gen,
		}

		err := (&main.SummarizeCmd{URL: "https://example.com"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Website Title: Example Domain\n\nSummary text\n", stdout.String())
	})

	t.Run("empty URL warns without generating", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		err := (&main.SummarizeCmd{URL: "  "}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, sitesum.EINVALID, sitesum.ErrorCode(err))
		assert.Contains(t, stderr.String(), main.WarningEmptyURL)
	})

	t.Run("prints error message on failure", func(t *testing.T) {
		t.Parallel()

		gen := &mock.Generator{
			GenerateFn: func(context.Context, string) (*sitesum.Summary, error) {
				return nil, sitesum.Errorf(sitesum.EFETCH, "HTTP 503 for https://example.com")
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Generator: gen,
		}

		err := (&main.SummarizeCmd{URL: "https://example.com"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: HTTP 503 for https://example.com")
	})
}

func TestMain_Run_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("uses injected generator", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.ParseConfig(map[string]string{})
		require.NoError(t, err)

		m := main.NewMain()
		m.Config = &cfg
		m.Generator = &mock.Generator{
			GenerateFn: func(_ context.Context, url string) (*sitesum.Summary, error) {
				return &sitesum.Summary{URL: url, Title: "T", Markdown: "M"}, nil
			},
		}
		stdout := &bytes.Buffer{}

		err = m.Run(context.Background(), []string{"summarize", "https://example.com"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Website Title: T")
	})

	t.Run("missing URL makes no network call", func(t *testing.T) {
		t.Parallel()

		hits := make(chan struct{}, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			hits <- struct{}{}
		}))
		defer srv.Close()

		cfg, err := main.ParseConfig(map[string]string{"OPENAI_BASE_URL": srv.URL + "/"})
		require.NoError(t, err)

		m := main.NewMain()
		m.Config = &cfg
		stderr := &bytes.Buffer{}

		err = m.Run(context.Background(), []string{"summarize"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), main.WarningEmptyURL)
		assert.Empty(t, hits)
	})

	t.Run("end to end against local servers", func(t *testing.T) {
		t.Parallel()

		page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<html><title>Test</title><body><p>Hello</p><script>x=1</script></body></html>`))
		}))
		defer page.Close()

		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"c","object":"chat.completion","created":1,"model":"gpt-4o-mini",` +
				`"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Summary text"}}]}`))
		}))
		defer api.Close()

		cfg, err := main.ParseConfig(map[string]string{
			"OPENAI_API_KEY":    "sk-test",
			"OPENAI_BASE_URL":   api.URL + "/",
			"SITESUM_LOG_LEVEL": "ERROR",
		})
		require.NoError(t, err)

		m := main.NewMain()
		m.Config = &cfg
		stdout := &bytes.Buffer{}

		err = m.Run(context.Background(), []string{"summarize", page.URL}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "Website Title: Test\n\nSummary text\n", stdout.String())
	})
}
