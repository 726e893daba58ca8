// Package goquery provides HTML content and link extraction built on
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docbot"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var _ docbot.Extractor = (*Extractor)(nil)

// Extractor implements docbot.Extractor. It removes header and footer
// landmarks, isolates the <main> region when present, and separates prose
// from verbatim code-block text. The underlying parser is permissive, so
// malformed markup degrades gracefully instead of failing.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page's prose and code text.
// Prose is the visible text of the content region with inline whitespace
// collapsed to single spaces. Code is the literal text of every <pre>
// block in document order, separated by blank lines.
func (e *Extractor) Extract(rawHTML string) (*docbot.PageContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docbot.Errorf(docbot.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("header, footer").Remove()

	region := doc.Selection
	if main := doc.Find("main"); main.Length() > 0 {
		region = main.First()
	}

	var codeBlocks []string
	region.Find("pre").Each(func(_ int, sel *goquery.Selection) {
		codeBlocks = append(codeBlocks, sel.Text())
	})

	return &docbot.PageContent{
		Prose: visibleText(region),
		Code:  strings.Join(codeBlocks, "\n\n"),
	}, nil
}

// visibleText returns the text of the selection with each text node
// trimmed and non-empty nodes joined by single spaces.
func visibleText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

// collectText walks the node tree gathering visible text. Invisible
// elements (script, style, noscript, template) are skipped entirely.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		}
	}
	if n.Type == html.TextNode {
		if text := strings.Join(strings.Fields(n.Data), " "); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
