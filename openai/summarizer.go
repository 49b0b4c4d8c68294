// Package openai implements sitesum.Summarizer on the OpenAI Chat
// Completions API.
package openai

import (
	"context"
	"strings"

	"github.com/fwojciec/sitesum"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// Ensure Summarizer implements sitesum.Summarizer at compile time.
var _ sitesum.Summarizer = (*Summarizer)(nil)

// Summarizer sends the two-message conversation to a chat completion model
// and returns the first choice. The SDK's automatic retries are disabled.
type Summarizer struct {
	client openai.Client
	model  string
}

// Option configures a Summarizer.
type Option func(*config)

type config struct {
	model   string
	baseURL string
}

// WithModel overrides DefaultModel.
func WithModel(model string) Option {
	return func(c *config) {
		c.model = model
	}
}

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func WithBaseURL(url string) Option {
	return func(c *config) {
		c.baseURL = url
	}
}

// NewSummarizer creates a Summarizer authenticated with apiKey.
// The key is not checked here; a bad key fails on the first call.
func NewSummarizer(apiKey string, opts ...Option) *Summarizer {
	cfg := config{model: DefaultModel}
	for _, opt := range opts {
		opt(&cfg)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if cfg.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &Summarizer{
		client: openai.NewClient(reqOpts...),
		model:  cfg.model,
	}
}

// Model returns the model identifier sent with every request.
func (s *Summarizer) Model() string {
	return s.model
}

// Summarize sends messages to the completion endpoint and returns the
// content of the first choice.
func (s *Summarizer) Summarize(ctx context.Context, messages []sitesum.Message) (string, error) {
	if err := sitesum.ValidateMessages(messages); err != nil {
		return "", err
	}

	resp, err := s.client.Chat.Completions.New(ctx, BuildParams(s.model, messages))
	if err != nil {
		return "", sitesum.WrapError(sitesum.EAPI, err)
	}
	if len(resp.Choices) == 0 {
		return "", sitesum.Errorf(sitesum.EAPI, "openai returned no choices")
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", sitesum.Errorf(sitesum.EAPI, "openai returned an empty completion")
	}
	return content, nil
}

// BuildParams maps the conversation onto a chat completion request.
func BuildParams(model string, messages []sitesum.Message) openai.ChatCompletionNewParams {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case sitesum.RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}
	return openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: msgs,
	}
}
