package docbot

// PageContent holds the content extracted from a single fetched page.
type PageContent struct {
	// URL the page was fetched from. Set by the caller, not the extractor.
	URL string

	// Prose is the visible text of the main content region with all
	// inline whitespace collapsed to single spaces between text nodes.
	Prose string

	// Code is the literal text of every preformatted block in document
	// order, separated by blank lines. Empty when the page has no code.
	Code string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// Extraction never fails on malformed markup; missing regions degrade
// gracefully.
type Extractor interface {
	// Extract strips header/footer landmarks, isolates the main content
	// region if present (the whole document otherwise), and separates
	// prose from verbatim code-block text.
	Extract(html string) (*PageContent, error)
}

// LinkExtractor enumerates hyperlinks found on a page.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns every hyperlink resolved to an
	// absolute URL against baseURL, in document order. Links that cannot
	// be resolved and non-HTTP schemes (mailto:, javascript:, ...) are
	// silently dropped.
	ExtractLinks(html string, baseURL string) ([]string, error)
}
