package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/sitesum"
	"github.com/joho/godotenv"
)

// Accepted values for the selector settings.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	FetcherHTTP    = "http"
	FetcherBrowser = "browser"

	ExtractorGoquery     = "goquery"
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
)

// PlaceholderAPIKey is used when no credential is configured. The service
// rejects it on the first request.
const PlaceholderAPIKey = "your-key-if-not-using-env"

// Config holds settings read from the environment.
type Config struct {
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"         envDefault:"your-key-if-not-using-env"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL"`
	GeminiAPIKey  string        `env:"GEMINI_API_KEY"         envDefault:"your-key-if-not-using-env"`
	Provider      string        `env:"SITESUM_PROVIDER"       envDefault:"openai"`
	Model         string        `env:"SITESUM_MODEL"`
	Fetcher       string        `env:"SITESUM_FETCHER"        envDefault:"http"`
	Extractor     string        `env:"SITESUM_EXTRACTOR"      envDefault:"goquery"`
	FetchTimeout  time.Duration `env:"SITESUM_FETCH_TIMEOUT"  envDefault:"10s"`
	MaxPageBytes  int64         `env:"SITESUM_MAX_PAGE_BYTES" envDefault:"10485760"`
	Addr          string        `env:"SITESUM_ADDR"           envDefault:":8501"`
	RateLimit     float64       `env:"SITESUM_RATE_LIMIT"     envDefault:"0"`
	LogLevel      slog.Level    `env:"SITESUM_LOG_LEVEL"      envDefault:"INFO"`
}

// LoadConfig loads a .env file from the working directory, if present, and
// then parses the process environment. Variables already set in the
// environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, sitesum.Errorf(sitesum.EINVALID, "load .env: %v", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, sitesum.Errorf(sitesum.EINVALID, "parse environment: %v", err)
	}
	return cfg, cfg.Validate()
}

// ParseConfig parses cfg from the given variables instead of the process
// environment.
func ParseConfig(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, sitesum.Errorf(sitesum.EINVALID, "parse environment: %v", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports selector settings outside their accepted values.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return sitesum.Errorf(sitesum.EINVALID, "unknown provider %q (want %s or %s)", c.Provider, ProviderOpenAI, ProviderGemini)
	}
	switch c.Fetcher {
	case FetcherHTTP, FetcherBrowser:
	default:
		return sitesum.Errorf(sitesum.EINVALID, "unknown fetcher %q (want %s or %s)", c.Fetcher, FetcherHTTP, FetcherBrowser)
	}
	switch c.Extractor {
	case ExtractorGoquery, ExtractorReadability, ExtractorTrafilatura:
	default:
		return sitesum.Errorf(sitesum.EINVALID, "unknown extractor %q", c.Extractor)
	}
	if c.FetchTimeout <= 0 {
		return sitesum.Errorf(sitesum.EINVALID, "fetch timeout must be positive")
	}
	if c.MaxPageBytes <= 0 {
		return sitesum.Errorf(sitesum.EINVALID, "max page bytes must be positive")
	}
	return nil
}
