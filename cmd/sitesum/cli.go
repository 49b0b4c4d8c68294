package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/sitesum"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    Config
	Logger    *slog.Logger
	Generator sitesum.Generator
	Renderer  sitesum.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve     ServeCmd     `cmd:"" help:"Serve the summarizer web form"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize a website and print the result"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (default from SITESUM_ADDR)"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL string `arg:"" optional:"" help:"Website URL"`
}
