package main

import (
	"fmt"

	sumgin "github.com/fwojciec/sitesum/gin"
)

// Run executes the serve command until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = deps.Config.Addr
	}

	srv := sumgin.NewServer(deps.Generator, deps.Renderer,
		sumgin.WithLogger(deps.Logger),
		sumgin.WithRateLimit(deps.Config.RateLimit),
	)

	fmt.Fprintf(deps.Stdout, "Serving on http://%s\n", displayAddr(addr))
	return srv.ListenAndServe(deps.Ctx, addr)
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
