package sitesum

// Renderer converts markdown to HTML for display.
type Renderer interface {
	// Render transforms markdown into an HTML fragment.
	// Raw HTML embedded in the markdown is not passed through.
	Render(markdown string) (string, error)
}
