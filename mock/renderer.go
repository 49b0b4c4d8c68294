package mock

import "github.com/fwojciec/sitesum"

var _ sitesum.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of sitesum.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
