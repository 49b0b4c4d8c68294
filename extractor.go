package sitesum

import "strings"

// NoTitle is used as the page title when the document has none.
const NoTitle = "No title found"

// PageContent holds the readable parts of a fetched page.
type PageContent struct {
	// Title is the text of the page's title element, or NoTitle.
	Title string

	// Body is the visible text of the page body, one text fragment per line.
	// Script, style, image and input content is never included.
	Body string
}

// Extractor reduces raw HTML to a title and plain-text body.
type Extractor interface {
	// Extract parses the HTML and returns its readable content.
	// Returns EPARSE if the input cannot be used as an HTML document.
	Extract(html string) (*PageContent, error)
}

// NormalizeText trims every line of s and drops blank ones, giving text
// from any extraction strategy the same one-fragment-per-line shape.
func NormalizeText(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// TitleOrDefault returns the trimmed title, or NoTitle when it is blank.
func TitleOrDefault(title string) string {
	if title = strings.TrimSpace(title); title == "" {
		return NoTitle
	}
	return title
}
