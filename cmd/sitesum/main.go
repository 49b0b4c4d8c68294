package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitesum"
	"github.com/fwojciec/sitesum/gemini"
	"github.com/fwojciec/sitesum/goldmark"
	"github.com/fwojciec/sitesum/goquery"
	sumhttp "github.com/fwojciec/sitesum/http"
	"github.com/fwojciec/sitesum/openai"
	"github.com/fwojciec/sitesum/pipeline"
	"github.com/fwojciec/sitesum/readability"
	"github.com/fwojciec/sitesum/rod"
	sumslog "github.com/fwojciec/sitesum/slog"
	"github.com/fwojciec/sitesum/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config overrides the environment when set. Set before calling Run().
	Config *Config

	// Generator overrides the pipeline built from Config, for end-to-end
	// testing.
	Generator sitesum.Generator

	fetcher sitesum.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitesum"),
		kong.Description("Summarize a website with a language model."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitesum --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Config == nil {
		cfg, err := LoadConfig()
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		m.Config = &cfg
	}
	deps.Config = *m.Config
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: m.Config.LogLevel}))
	deps.Renderer = goldmark.NewRenderer()

	defer m.Close()

	// An empty summarize URL is rejected before anything is started.
	needsPipeline := cmd == "serve" || strings.TrimSpace(cli.Summarize.URL) != ""
	if needsPipeline {
		if m.Generator == nil {
			gen, err := m.buildGenerator(ctx, deps.Logger, stderr)
			if err != nil {
				return err
			}
			m.Generator = gen
		}
		deps.Generator = m.Generator
	}

	return kongCtx.Run(deps)
}

// buildGenerator wires the pipeline selected by the configuration.
func (m *Main) buildGenerator(ctx context.Context, logger *slog.Logger, stderr io.Writer) (sitesum.Generator, error) {
	cfg := m.Config

	var fetcher sitesum.Fetcher
	switch cfg.Fetcher {
	case FetcherBrowser:
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cfg.FetchTimeout), rod.WithLogger(logger))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	default:
		fetcher = sumhttp.NewFetcher(
			sumhttp.WithTimeout(cfg.FetchTimeout),
			sumhttp.WithMaxBytes(cfg.MaxPageBytes),
		)
	}
	m.fetcher = fetcher

	var extractor sitesum.Extractor
	switch cfg.Extractor {
	case ExtractorReadability:
		extractor = readability.NewExtractor()
	case ExtractorTrafilatura:
		extractor = trafilatura.NewExtractor()
	default:
		extractor = goquery.NewExtractor()
	}

	var summarizer sitesum.Summarizer
	switch cfg.Provider {
	case ProviderGemini:
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, "")
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		var opts []gemini.Option
		if cfg.Model != "" {
			opts = append(opts, gemini.WithModel(cfg.Model))
		}
		summarizer = gemini.NewSummarizer(client, opts...)
	default:
		var opts []openai.Option
		if cfg.Model != "" {
			opts = append(opts, openai.WithModel(cfg.Model))
		}
		if cfg.OpenAIBaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.OpenAIBaseURL))
		}
		summarizer = openai.NewSummarizer(cfg.OpenAIAPIKey, opts...)
	}

	if cfg.OpenAIAPIKey == PlaceholderAPIKey && cfg.Provider == ProviderOpenAI ||
		cfg.GeminiAPIKey == PlaceholderAPIKey && cfg.Provider == ProviderGemini {
		logger.Warn("no API key configured, requests will be rejected by the provider", "provider", cfg.Provider)
	}

	return sumslog.NewLoggingGenerator(&pipeline.Generator{
		Fetcher:    sumslog.NewLoggingFetcher(fetcher, logger),
		Extractor:  extractor,
		Summarizer: sumslog.NewLoggingSummarizer(summarizer, logger),
	}, logger), nil
}
