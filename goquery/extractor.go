package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitesum"
	"golang.org/x/net/html"
)

// discardSelector matches body elements whose content never reaches the
// extracted text. noscript, iframe, noembed, noframes and xmp children are
// parsed as raw markup text.
const discardSelector = "script, style, img, image, input, noscript, iframe, noembed, noframes, xmp"

// Ensure Extractor implements sitesum.Extractor at compile time.
var _ sitesum.Extractor = (*Extractor)(nil)

// Extractor reduces a page to its title and the visible text of its body.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML and returns the page title and body text.
// Discarded elements are removed before any text is read.
func (e *Extractor) Extract(rawHTML string) (*sitesum.PageContent, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitesum.Errorf(sitesum.EPARSE, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, sitesum.Errorf(sitesum.EPARSE, "failed to parse HTML: %v", err)
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, sitesum.Errorf(sitesum.EPARSE, "document has no body element")
	}
	body.Find(discardSelector).Remove()

	return &sitesum.PageContent{
		Title: Title(doc),
		Body:  VisibleText(body),
	}, nil
}

// Title returns the trimmed text of the first title element, or
// sitesum.NoTitle when there is none or it is blank.
func Title(doc *goquery.Document) string {
	return sitesum.TitleOrDefault(doc.Find("title").First().Text())
}

// VisibleText joins the trimmed, non-empty text nodes under sel with
// newlines, in document order. Comments are skipped.
func VisibleText(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, "\n")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
