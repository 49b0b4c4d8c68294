// Package gin serves the summarizer form and JSON API with gin-gonic/gin.
package gin

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/sitesum"
	sumslog "github.com/fwojciec/sitesum/slog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

//go:embed templates/*.html
var templates embed.FS

// Default settings.
const (
	DefaultURL            = "https://example.com"
	DefaultRequestTimeout = 2 * time.Minute
	shutdownTimeout       = 10 * time.Second
)

// Messages shown to the user.
const (
	WarningEmptyURL = "Please enter a valid URL."
	MessageBusy     = "a summary is already being generated"
	MessageLimited  = "too many requests, try again shortly"
	MessageInternal = "Internal error."
)

// RequestIDHeader carries the request ID on every response.
const RequestIDHeader = "X-Request-ID"

// Server serves the summary form and API. Only one summary is generated at
// a time; a request arriving while one is in progress is rejected with
// ECONFLICT rather than queued.
type Server struct {
	generator sitesum.Generator
	renderer  sitesum.Renderer
	logger    *slog.Logger

	busy    *semaphore.Weighted
	limiter *ClientLimiter
	timeout time.Duration

	engine *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithRateLimit limits each client to rps summary requests per second.
// Zero or negative disables limiting.
func WithRateLimit(rps float64) Option {
	return func(s *Server) {
		if rps > 0 {
			s.limiter = NewClientLimiter(rps)
		} else {
			s.limiter = nil
		}
	}
}

// WithRequestTimeout bounds a single pipeline run.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.timeout = d
	}
}

// WithLogger sets the logger used for request lines.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server and registers its routes.
func NewServer(generator sitesum.Generator, renderer sitesum.Renderer, opts ...Option) *Server {
	s := &Server{
		generator: generator,
		renderer:  renderer,
		logger:    slog.Default(),
		busy:      semaphore.NewWeighted(1),
		timeout:   DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestID())
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templates, "templates/*.html")))

	engine.GET("/", s.handleIndex)
	engine.POST("/", s.handleForm)
	engine.POST("/api/summaries", s.handleAPI)
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.engine = engine
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// page is the data rendered by index.html.
type page struct {
	URL         string
	Warning     string
	Error       string
	Summary     *sitesum.Summary
	SummaryHTML template.HTML
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", page{URL: DefaultURL})
}

func (s *Server) handleForm(c *gin.Context) {
	url := c.PostForm("url")
	if strings.TrimSpace(url) == "" {
		c.HTML(http.StatusBadRequest, "index.html", page{URL: url, Warning: WarningEmptyURL})
		return
	}

	summary, err := s.generate(c, url)
	if err != nil {
		c.HTML(StatusCode(err), "index.html", page{URL: url, Error: DisplayMessage(err)})
		return
	}

	html, err := s.renderer.Render(summary.Markdown)
	if err != nil {
		c.HTML(StatusCode(err), "index.html", page{URL: url, Error: DisplayMessage(err)})
		return
	}

	c.HTML(http.StatusOK, "index.html", page{
		URL:     url,
		Summary: summary,
		// Renderer output never passes raw HTML through.
		SummaryHTML: template.HTML(html),
	})
}

type summaryRequest struct {
	URL string `json:"url"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleAPI(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, sitesum.Errorf(sitesum.EINVALID, "invalid request body"))
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		s.writeError(c, sitesum.Errorf(sitesum.EINVALID, WarningEmptyURL))
		return
	}

	summary, err := s.generate(c, req.URL)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) writeError(c *gin.Context, err error) {
	c.JSON(StatusCode(err), errorResponse{
		Error: DisplayMessage(err),
		Code:  sitesum.ErrorCode(err),
	})
}

// generate applies the per-client limit and the single-run guard, then runs
// the pipeline.
func (s *Server) generate(c *gin.Context, url string) (*sitesum.Summary, error) {
	if s.limiter != nil && !s.limiter.Allow(c.ClientIP()) {
		return nil, sitesum.Errorf(sitesum.ERATELIMIT, MessageLimited)
	}

	if !s.busy.TryAcquire(1) {
		return nil, sitesum.Errorf(sitesum.ECONFLICT, MessageBusy)
	}
	defer s.busy.Release(1)

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	return s.generator.Generate(ctx, url)
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(sumslog.WithRequestID(c.Request.Context(), id))

		begin := time.Now()
		c.Next()

		s.logger.InfoContext(c.Request.Context(), "request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(begin),
		)
	}
}

// StatusCode maps an application error code to an HTTP status.
func StatusCode(err error) int {
	switch sitesum.ErrorCode(err) {
	case sitesum.EINVALID:
		return http.StatusBadRequest
	case sitesum.EPARSE:
		return http.StatusUnprocessableEntity
	case sitesum.EFETCH, sitesum.EAPI:
		return http.StatusBadGateway
	case sitesum.ECONFLICT:
		return http.StatusConflict
	case sitesum.ERATELIMIT:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// DisplayMessage returns the message shown to the user for err. Internal
// errors get a generic message.
func DisplayMessage(err error) string {
	if sitesum.ErrorCode(err) == sitesum.EINTERNAL {
		return MessageInternal
	}
	return sitesum.ErrorMessage(err)
}
