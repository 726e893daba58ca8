package mock

import "github.com/fwojciec/docbot"

var _ docbot.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docbot.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docbot.PageContent, error)
}

func (e *Extractor) Extract(html string) (*docbot.PageContent, error) {
	return e.ExtractFn(html)
}

var _ docbot.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of docbot.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}
