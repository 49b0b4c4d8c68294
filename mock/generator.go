package mock

import (
	"context"

	"github.com/fwojciec/sitesum"
)

var _ sitesum.Generator = (*Generator)(nil)

// Generator is a mock implementation of sitesum.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, url string) (*sitesum.Summary, error)
}

func (g *Generator) Generate(ctx context.Context, url string) (*sitesum.Summary, error) {
	return g.GenerateFn(ctx, url)
}
