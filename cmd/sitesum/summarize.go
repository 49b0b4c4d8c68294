package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/sitesum"
)

// WarningEmptyURL is printed when summarize is given no URL.
const WarningEmptyURL = "Please enter a valid URL."

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	if strings.TrimSpace(c.URL) == "" {
		fmt.Fprintln(deps.Stderr, WarningEmptyURL)
		return sitesum.Errorf(sitesum.EINVALID, "url required")
	}

	summary, err := deps.Generator.Generate(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesum.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Website Title: %s\n\n", summary.Title)
	fmt.Fprintln(deps.Stdout, summary.Markdown)
	return nil
}
