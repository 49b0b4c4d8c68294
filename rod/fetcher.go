// Package rod provides a headless-Chrome implementation of sitesum.Fetcher
// for pages that build their content with JavaScript.
package rod

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fwojciec/sitesum"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	// DefaultFetchTimeout bounds navigation, load and serialization of a page.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultMaxPages is the number of pages rendered before the browser is
	// restarted. Chrome memory keeps growing in a long-lived process even
	// when pages are closed.
	DefaultMaxPages = 75
)

// Ensure Fetcher implements sitesum.Fetcher at compile time.
var _ sitesum.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines. A browser
// retired by a restart stays open until its last in-flight page is done.
type Fetcher struct {
	timeout  time.Duration
	maxPages int
	logger   *slog.Logger

	mu      sync.Mutex
	current *session
	pages   int
	closed  bool
}

// session is one launched browser and the pages still rendering on it.
type session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	inflight int
	retired  bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxPages sets how many pages are rendered before the browser restarts.
// Defaults to DefaultMaxPages if not specified.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// WithLogger sets the logger for browser restart and shutdown failures.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxPages: DefaultMaxPages,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}

	s, err := launch()
	if err != nil {
		return nil, err
	}
	f.current = s
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", sitesum.WrapError(sitesum.EFETCH, err)
	}

	s, err := f.acquire()
	if err != nil {
		return "", err
	}
	defer f.release(s)

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", sitesum.WrapError(sitesum.EFETCH, err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", sitesum.WrapError(sitesum.EFETCH, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", sitesum.WrapError(sitesum.EFETCH, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", sitesum.WrapError(sitesum.EFETCH, err)
	}
	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	s := f.current
	f.current = nil
	return s.close()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current == nil {
		return 0
	}
	return f.current.launcher.PID()
}

// acquire returns the session for the next page, restarting the browser
// first once maxPages pages have been rendered. A failed restart keeps the
// old browser.
func (f *Fetcher) acquire() (*session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, sitesum.Errorf(sitesum.EFETCH, "fetcher is closed")
	}

	if f.maxPages > 0 && f.pages >= f.maxPages {
		next, err := launch()
		if err != nil {
			f.logger.Warn("browser restart failed", "err", err)
		} else {
			old := f.current
			old.retired = true
			f.current = next
			f.pages = 0
			if old.inflight == 0 {
				f.closeRetired(old)
			}
		}
	}

	f.pages++
	f.current.inflight++
	return f.current, nil
}

// release marks a page on s as done and closes s if it was retired and
// nothing else is rendering on it.
func (f *Fetcher) release(s *session) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s.inflight--
	if s.retired && s.inflight == 0 {
		f.closeRetired(s)
	}
}

// closeRetired closes a retired session. Must be called with mu held.
func (f *Fetcher) closeRetired(s *session) {
	if err := s.close(); err != nil {
		f.logger.Warn("closing retired browser", "err", err)
	}
}

// launch starts a browser with stability flags.
func launch() (*session, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &session{browser: browser, launcher: l}, nil
}

// close closes the browser and kills the launcher.
func (s *session) close() error {
	if s == nil {
		return nil
	}
	err := s.browser.Close()
	s.launcher.Kill()
	return err
}
