// Package gemini implements sitesum.Summarizer on Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/sitesum"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Summarizer implements sitesum.Summarizer at compile time.
var _ sitesum.Summarizer = (*Summarizer)(nil)

// Summarizer implements sitesum.Summarizer using Google Gemini.
// The system message becomes the system instruction.
type Summarizer struct {
	client *genai.Client
	model  string
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithModel overrides DefaultModel.
func WithModel(model string) Option {
	return func(s *Summarizer) {
		s.model = model
	}
}

// NewClient creates a Gemini API client. baseURL may be empty.
func NewClient(ctx context.Context, apiKey, baseURL string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, sitesum.WrapError(sitesum.EAPI, err)
	}
	return client, nil
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client, opts ...Option) *Summarizer {
	s := &Summarizer{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Model returns the model identifier sent with every request.
func (s *Summarizer) Model() string {
	return s.model
}

// Summarize generates a summary from the system and user messages.
func (s *Summarizer) Summarize(ctx context.Context, messages []sitesum.Message) (string, error) {
	if err := sitesum.ValidateMessages(messages); err != nil {
		return "", err
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: messages[1].Content}},
		}},
		BuildConfig(messages[0].Content),
	)
	if err != nil {
		return "", sitesum.WrapError(sitesum.EAPI, err)
	}
	if result == nil {
		return "", sitesum.Errorf(sitesum.EAPI, "gemini returned nil result")
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", sitesum.Errorf(sitesum.EAPI, "gemini returned an empty response")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig carrying the system prompt.
func BuildConfig(system string) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
	}
}
