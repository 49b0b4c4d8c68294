// Package goldmark renders summary markdown to HTML using yuin/goldmark.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/sitesum"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Ensure Renderer implements sitesum.Renderer at compile time.
var _ sitesum.Renderer = (*Renderer)(nil)

// Renderer converts GitHub-flavoured markdown to an HTML fragment.
// The unsafe option is never enabled, so raw HTML in the markdown is
// replaced by a comment.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render transforms markdown into HTML.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", sitesum.WrapError(sitesum.EINTERNAL, err)
	}
	return buf.String(), nil
}
